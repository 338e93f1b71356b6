package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/events"
	"Listline/internal/fields"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/services/storage"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type PublishCustomization struct {
	CustomizationId uuid.UUID
}

func (a PublishCustomization) LogRequest() bool {
	return true
}

func (a PublishCustomization) LogResponse() bool {
	return true
}

func (a PublishCustomization) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.CustomizationManageOwn)
}

func (a PublishCustomization) GetRequestName() string {
	return "PublishCustomization"
}

type PublishCustomizationResponse struct {
	CustomizationResponse
}

func HandlePublishCustomization(ctx context.Context, command PublishCustomization) (*PublishCustomizationResponse, error) {
	scope := middlewares.GetScope(ctx)

	customization, err := getOwnCustomization(ctx, command.CustomizationId)
	if err != nil {
		return nil, err
	}

	document, err := publishedDocument(ctx, customization)
	if err != nil {
		return nil, err
	}

	store := ioc.GetDependency[storage.Store](scope)
	key := fmt.Sprintf("published/%s.html", customization.Id())
	url, err := store.Put(ctx, key, "text/html", strings.NewReader(document), int64(len(document)))
	if err != nil {
		return nil, fmt.Errorf("storing published document: %w", err)
	}

	customization.Publish(url)

	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	err = customizationRepository.Update(ctx, customization)
	if err != nil {
		return nil, fmt.Errorf("updating customization: %w", err)
	}

	m := ioc.GetDependency[mediator.Mediator](scope)
	err = mediator.SendEvent(ctx, m, events.CustomizationPublishedEvent{
		CustomizationId: customization.Id(),
		PublishedUrl:    url,
	})
	if err != nil {
		return nil, fmt.Errorf("raising event: %w", err)
	}

	return &PublishCustomizationResponse{
		CustomizationResponse: newCustomizationResponse(customization),
	}, nil
}

// publishedDocument prefers the html the editor saved and falls back to the
// template with its placeholders filled in.
func publishedDocument(ctx context.Context, customization *repositories.Customization) (string, error) {
	if rendered := customization.RenderedHtml(); rendered != nil && strings.TrimSpace(*rendered) != "" {
		return *rendered, nil
	}

	scope := middlewares.GetScope(ctx)
	templateRepository := ioc.GetDependency[repositories.TemplateRepository](scope)
	template, err := templateRepository.Single(ctx, repositories.NewTemplateFilter().Id(customization.TemplateId()))
	if err != nil {
		return "", fmt.Errorf("getting template: %w", err)
	}

	templateFields, err := getTemplateFields(ctx, template.Id())
	if err != nil {
		return "", err
	}

	return fields.RenderPlaceholders(template.HtmlContent(), templateFields, customization.Values()), nil
}
