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

type UpdateCampaign struct {
	CampaignId uuid.UUID
	Name       string
	Color      string
}

func (a UpdateCampaign) LogRequest() bool {
	return true
}

func (a UpdateCampaign) LogResponse() bool {
	return true
}

func (a UpdateCampaign) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CampaignManage)
}

func (a UpdateCampaign) GetRequestName() string {
	return "UpdateCampaign"
}

type UpdateCampaignResponse struct {
	Id    uuid.UUID
	Name  string
	Color string
}

func HandleUpdateCampaign(ctx context.Context, command UpdateCampaign) (*UpdateCampaignResponse, error) {
	scope := middlewares.GetScope(ctx)

	campaignRepository := ioc.GetDependency[repositories.CampaignRepository](scope)
	campaign, err := campaignRepository.Single(ctx, repositories.NewCampaignFilter().Id(command.CampaignId))
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}

	campaign.SetName(command.Name)
	if command.Color != "" {
		campaign.SetColor(command.Color)
	}

	err = campaignRepository.Update(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("updating campaign: %w", err)
	}

	return &UpdateCampaignResponse{
		Id:    campaign.Id(),
		Name:  campaign.Name(),
		Color: campaign.Color(),
	}, nil
}
