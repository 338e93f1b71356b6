package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/config"
	"Listline/internal/htmledit"
	"Listline/internal/middlewares"
	"Listline/internal/services/ai"
	"Listline/internal/services/icons"
	"Listline/internal/settings"
	"Listline/utils"
	"context"
	"fmt"
	"strings"

	"github.com/The127/ioc"
)

const aiEditMaxTokens = 1024

type AiEdit struct {
	HtmlContent string
	UserPrompt  string
}

func (a AiEdit) LogRequest() bool {
	return true
}

func (a AiEdit) LogResponse() bool {
	return false
}

func (a AiEdit) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.AiUse)
}

func (a AiEdit) GetRequestName() string {
	return "AiEdit"
}

type AiEditResponse struct {
	Html    string
	Changes []AiEditChange
	Message string
}

type AiEditChange struct {
	Tool   string
	Params map[string]any
}

func HandleAiEdit(ctx context.Context, command AiEdit) (*AiEditResponse, error) {
	if strings.TrimSpace(command.HtmlContent) == "" || strings.TrimSpace(command.UserPrompt) == "" {
		return nil, utils.NewPublicError(utils.ErrHttpBadRequest, "HTML content and prompt are required")
	}

	scope := middlewares.GetScope(ctx)
	aiConfig := ioc.GetDependency[config.AiConfig](scope)
	aiSettings := settings.LoadAiSettings(ctx, aiConfig.DefaultProvider)

	registry := ioc.GetDependency[ai.Registry](scope)
	provider, err := registry.Get(config.AiProvider(aiSettings.Provider))
	if err != nil {
		return nil, fmt.Errorf("getting ai provider: %w", err)
	}

	calls, err := provider.CompleteWithTools(ctx, ai.ToolRequest{
		System:    htmledit.SystemPrompt(command.HtmlContent, aiSettings.SystemPrompt),
		Prompt:    command.UserPrompt,
		Tools:     htmledit.Tools,
		MaxTokens: aiEditMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("editing html: %w", err)
	}

	if len(calls) == 0 {
		return &AiEditResponse{
			Html:    command.HtmlContent,
			Changes: []AiEditChange{},
			Message: "No changes detected",
		}, nil
	}

	executor := htmledit.NewExecutor(ioc.GetDependency[icons.Service](scope))
	html := executor.Execute(ctx, command.HtmlContent, calls)

	changes := make([]AiEditChange, 0, len(calls))
	for _, call := range calls {
		changes = append(changes, AiEditChange{
			Tool:   call.Name,
			Params: call.Input,
		})
	}

	return &AiEditResponse{
		Html:    html,
		Changes: changes,
	}, nil
}
