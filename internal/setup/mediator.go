package setup

import (
	"Listline/internal/behaviours"
	"Listline/internal/commands"
	"Listline/internal/events"
	"Listline/internal/mediator"
	"Listline/internal/queries"

	"github.com/The127/ioc"
)

func Mediator(dc *ioc.DependencyCollection) {
	m := mediator.NewMediator()

	mediator.RegisterHandler(m, queries.HandleListTemplates)
	mediator.RegisterHandler(m, queries.HandleGetTemplate)
	mediator.RegisterHandler(m, commands.HandleCreateTemplate)
	mediator.RegisterHandler(m, commands.HandleUpdateTemplate)
	mediator.RegisterHandler(m, commands.HandleDeleteTemplate)

	mediator.RegisterHandler(m, queries.HandleListCampaigns)
	mediator.RegisterHandler(m, commands.HandleCreateCampaign)
	mediator.RegisterHandler(m, commands.HandleUpdateCampaign)
	mediator.RegisterHandler(m, commands.HandleDeleteCampaign)

	mediator.RegisterHandler(m, queries.HandleListOwnCustomizations)
	mediator.RegisterHandler(m, queries.HandleGetCustomization)
	mediator.RegisterHandler(m, commands.HandleCreateCustomization)
	mediator.RegisterHandler(m, commands.HandleUpdateCustomization)
	mediator.RegisterHandler(m, commands.HandleDeleteCustomization)
	mediator.RegisterHandler(m, commands.HandlePublishCustomization)

	mediator.RegisterHandler(m, queries.HandleGetSetting)
	mediator.RegisterHandler(m, commands.HandleUpsertSetting)
	mediator.RegisterHandler(m, commands.HandlePatchSetting)

	mediator.RegisterHandler(m, commands.HandleAiCustomize)
	mediator.RegisterHandler(m, commands.HandleAiEdit)

	mediator.RegisterHandler(m, commands.HandleRenderDocument)
	mediator.RegisterHandler(m, commands.HandleRenderThumbnail)
	mediator.RegisterHandler(m, commands.HandleUploadImage)

	mediator.RegisterHandler(m, queries.HandleGetAdminStats)
	mediator.RegisterHandler(m, queries.HandleListUsers)
	mediator.RegisterHandler(m, commands.HandleUpdateUserRole)
	mediator.RegisterHandler(m, queries.HandleGetProfile)

	mediator.RegisterEventHandler(m, events.QueuePublishedMailOnCustomizationPublishedEvent)

	mediator.RegisterBehaviour(m, behaviours.LoggingBehaviour)
	mediator.RegisterBehaviour(m, behaviours.PolicyBehaviour)

	ioc.RegisterSingleton(dc, func(dp *ioc.DependencyProvider) mediator.Mediator {
		return m
	})
}
