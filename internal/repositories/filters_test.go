package repositories

import (
	"Listline/internal/authentication/roles"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type FilterSuite struct {
	suite.Suite
}

func TestFilterSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FilterSuite))
}

func (s *FilterSuite) TestTemplateFilterIsImmutable() {
	// arrange
	base := NewTemplateFilter()
	campaignId := uuid.New()

	// act
	filtered := base.ActiveOnly().CampaignId(campaignId).Search(NewContainsSearchFilter("loft"))

	// assert
	s.False(base.GetActiveOnly())
	s.False(base.HasCampaignId())
	s.False(base.HasSearch())
	s.True(filtered.GetActiveOnly())
	s.Equal(campaignId, filtered.GetCampaignId())
	s.Equal("%loft%", filtered.GetSearch().Pattern())
}

func (s *FilterSuite) TestTemplateFilterIdsAreCopied() {
	// arrange
	ids := []uuid.UUID{uuid.New()}

	// act
	filter := NewTemplateFilter().Ids(ids)
	ids[0] = uuid.Nil

	// assert
	s.True(filter.HasIds())
	s.NotEqual(uuid.Nil, filter.GetIds()[0])
}

func (s *FilterSuite) TestCustomizationFilter() {
	// arrange
	userId := uuid.New()

	// act
	filter := NewCustomizationFilter().
		UserId(userId).
		Status(CustomizationStatusPublished).
		Pagination(2, 25).
		Order("audit_created_at", "desc")

	// assert
	s.Equal(userId, filter.GetUserId())
	s.False(filter.HasTemplateId())
	s.Equal(CustomizationStatusPublished, filter.GetStatus())
	s.True(filter.HasPagination())
	s.Equal(2, filter.GetPagingInfo().Page())
	s.Equal("desc", filter.GetOrderInfo().OrderDir())
}

func (s *FilterSuite) TestProfileFilter() {
	// act
	filter := NewProfileFilter().Email("a@b.c").Role(roles.Admin)

	// assert
	s.Equal("a@b.c", filter.GetEmail())
	s.Equal(roles.Admin, filter.GetRole())
	s.False(filter.HasId())
	s.False(filter.HasOrder())
}

func (s *FilterSuite) TestTemplateFieldTypes() {
	s.True(TemplateFieldTypeColor.IsValid())
	s.False(TemplateFieldType("select").IsValid())
}
