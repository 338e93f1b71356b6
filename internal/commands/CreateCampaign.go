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

type CreateCampaign struct {
	Name  string
	Color string
}

func (a CreateCampaign) LogRequest() bool {
	return true
}

func (a CreateCampaign) LogResponse() bool {
	return true
}

func (a CreateCampaign) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CampaignManage)
}

func (a CreateCampaign) GetRequestName() string {
	return "CreateCampaign"
}

type CreateCampaignResponse struct {
	Id    uuid.UUID
	Name  string
	Color string
}

func HandleCreateCampaign(ctx context.Context, command CreateCampaign) (*CreateCampaignResponse, error) {
	scope := middlewares.GetScope(ctx)

	campaignRepository := ioc.GetDependency[repositories.CampaignRepository](scope)
	campaign := repositories.NewCampaign(command.Name, command.Color)
	err := campaignRepository.Insert(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("inserting campaign: %w", err)
	}

	return &CreateCampaignResponse{
		Id:    campaign.Id(),
		Name:  campaign.Name(),
		Color: campaign.Color(),
	}, nil
}
