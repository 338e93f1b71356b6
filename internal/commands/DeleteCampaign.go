package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type DeleteCampaign struct {
	CampaignId uuid.UUID
}

func (a DeleteCampaign) LogRequest() bool {
	return true
}

func (a DeleteCampaign) LogResponse() bool {
	return true
}

func (a DeleteCampaign) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CampaignManage)
}

func (a DeleteCampaign) GetRequestName() string {
	return "DeleteCampaign"
}

type DeleteCampaignResponse struct {
	Id uuid.UUID
}

// HandleDeleteCampaign removes the campaign, its templates are detached by
// the foreign key.
func HandleDeleteCampaign(ctx context.Context, command DeleteCampaign) (*DeleteCampaignResponse, error) {
	scope := middlewares.GetScope(ctx)

	campaignRepository := ioc.GetDependency[repositories.CampaignRepository](scope)
	campaign, err := campaignRepository.Single(ctx, repositories.NewCampaignFilter().Id(command.CampaignId))
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}

	err = campaignRepository.Delete(ctx, campaign.Id())
	if err != nil {
		return nil, fmt.Errorf("deleting campaign: %w", err)
	}

	return &DeleteCampaignResponse{
		Id: campaign.Id(),
	}, nil
}
