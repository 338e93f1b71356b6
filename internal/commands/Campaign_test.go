package commands

import (
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/utils"
	"testing"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CampaignCommandSuite struct {
	suite.Suite
}

func TestCampaignCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CampaignCommandSuite))
}

func (s *CampaignCommandSuite) TestCreateUsesDefaultColor() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	campaignRepository := mocks.NewMockCampaignRepository(ctrl)
	campaignRepository.EXPECT().Insert(gomock.Any(), gomock.Cond(func(x *repositories.Campaign) bool {
		return x.Name() == "Spring" && x.Color() == repositories.DefaultCampaignColor
	})).Return(nil)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.CampaignRepository](dc, campaignRepository)
	})

	// act
	resp, err := HandleCreateCampaign(ctx, CreateCampaign{Name: "Spring"})

	// assert
	s.Require().NoError(err)
	s.Equal(repositories.DefaultCampaignColor, resp.Color)
}

func (s *CampaignCommandSuite) TestUpdateKeepsColorWhenBlank() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	campaign := repositories.NewCampaign("Spring", "#ff0000")

	campaignRepository := mocks.NewMockCampaignRepository(ctrl)
	campaignRepository.EXPECT().Single(gomock.Any(), gomock.Cond(func(x repositories.CampaignFilter) bool {
		return x.GetId() == campaign.Id()
	})).Return(campaign, nil)
	campaignRepository.EXPECT().Update(gomock.Any(), campaign).Return(nil)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.CampaignRepository](dc, campaignRepository)
	})

	// act
	resp, err := HandleUpdateCampaign(ctx, UpdateCampaign{
		CampaignId: campaign.Id(),
		Name:       "Summer",
	})

	// assert
	s.Require().NoError(err)
	s.Equal("Summer", resp.Name)
	s.Equal("#ff0000", resp.Color)
}

func (s *CampaignCommandSuite) TestDeleteMissingCampaign() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	campaignRepository := mocks.NewMockCampaignRepository(ctrl)
	campaignRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(nil, utils.ErrCampaignNotFound)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.CampaignRepository](dc, campaignRepository)
	})

	// act
	_, err := HandleDeleteCampaign(ctx, DeleteCampaign{CampaignId: uuid.New()})

	// assert
	s.ErrorIs(err, utils.ErrResourceNotFound)
}
