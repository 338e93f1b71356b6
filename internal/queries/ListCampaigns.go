package queries

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

var campaignOrderColumns = map[string]string{
	"name":       "name",
	"created_at": "audit_created_at",
}

type ListCampaigns struct {
	OrderedQuery
}

func (a ListCampaigns) LogRequest() bool {
	return true
}

func (a ListCampaigns) LogResponse() bool {
	return false
}

func (a ListCampaigns) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CampaignView)
}

func (a ListCampaigns) GetRequestName() string {
	return "ListCampaigns"
}

type ListCampaignsResponse struct {
	PagedResponse[ListCampaignsResponseItem]
}

type ListCampaignsResponseItem struct {
	Id        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func HandleListCampaigns(ctx context.Context, query ListCampaigns) (*ListCampaignsResponse, error) {
	scope := middlewares.GetScope(ctx)

	campaignFilter := repositories.NewCampaignFilter()
	if column, ok := query.Column(campaignOrderColumns); ok {
		campaignFilter = campaignFilter.Order(column, query.OrderDir)
	}

	campaignRepository := ioc.GetDependency[repositories.CampaignRepository](scope)
	campaigns, total, err := campaignRepository.List(ctx, campaignFilter)
	if err != nil {
		return nil, fmt.Errorf("getting campaigns: %w", err)
	}

	items := utils.MapSlice(campaigns, func(c *repositories.Campaign) ListCampaignsResponseItem {
		return ListCampaignsResponseItem{
			Id:        c.Id(),
			Name:      c.Name(),
			Color:     c.Color(),
			CreatedAt: c.AuditCreatedAt(),
			UpdatedAt: c.AuditUpdatedAt(),
		}
	})

	return &ListCampaignsResponse{
		PagedResponse: NewPagedResponse(items, total),
	}, nil
}
