package events

import (
	"Listline/internal/messages"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/services"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
)

type CustomizationPublishedEvent struct {
	CustomizationId uuid.UUID
	PublishedUrl    string
}

// QueuePublishedMailOnCustomizationPublishedEvent appends a notification mail
// for the owner to the outbox of the current transaction.
func QueuePublishedMailOnCustomizationPublishedEvent(ctx context.Context, event CustomizationPublishedEvent) error {
	scope := middlewares.GetScope(ctx)

	customizationRepository := ioc.GetDependency[repositories.CustomizationRepository](scope)
	customization, err := customizationRepository.Single(ctx, repositories.NewCustomizationFilter().Id(event.CustomizationId))
	if err != nil {
		return fmt.Errorf("getting customization: %w", err)
	}

	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)
	profile, err := profileRepository.First(ctx, repositories.NewProfileFilter().Id(customization.UserId()))
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}

	if profile == nil || profile.Email() == "" {
		return nil
	}

	displayName := utils.ZeroIfNil(profile.FullName())

	templateService := ioc.GetDependency[services.TemplateService](scope)
	mailBody, err := templateService.Template(
		services.CustomizationPublishedMailTemplate,
		services.CustomizationPublishedMailData{
			DisplayName:       displayName,
			CustomizationName: customization.Name(),
			PublishedUrl:      event.PublishedUrl,
		},
	)
	if err != nil {
		return fmt.Errorf("templating published mail: %w", err)
	}

	message := &messages.SendEmailMessage{
		To:          profile.Email(),
		DisplayName: displayName,
		Subject:     fmt.Sprintf("%s is published", customization.Name()),
		HtmlBody:    mailBody,
	}

	outboxMessage, err := repositories.NewOutboxMessage(message)
	if err != nil {
		return fmt.Errorf("creating email outbox message: %w", err)
	}

	outboxMessageRepository := ioc.GetDependency[repositories.OutboxMessageRepository](scope)
	err = outboxMessageRepository.Insert(ctx, outboxMessage)
	if err != nil {
		return fmt.Errorf("inserting email outbox message: %w", err)
	}

	return nil
}
