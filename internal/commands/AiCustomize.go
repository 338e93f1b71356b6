package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/config"
	"Listline/internal/customize"
	"Listline/internal/logging"
	"Listline/internal/metrics"
	"Listline/internal/middlewares"
	"Listline/internal/services/ai"
	"Listline/internal/services/keyValue"
	"Listline/internal/settings"
	"Listline/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/The127/ioc"
)

type AiCustomize struct {
	customize.Request
}

func (a AiCustomize) LogRequest() bool {
	return true
}

func (a AiCustomize) LogResponse() bool {
	return false
}

func (a AiCustomize) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.AiUse)
}

func (a AiCustomize) GetRequestName() string {
	return "AiCustomize"
}

type AiCustomizeResponse struct {
	Html string
}

func HandleAiCustomize(ctx context.Context, command AiCustomize) (*AiCustomizeResponse, error) {
	if strings.TrimSpace(command.HtmlContent) == "" {
		return nil, utils.NewPublicError(utils.ErrHttpBadRequest, "HTML content is required")
	}

	descriptions := customize.FieldDescriptions(command.Fields, command.Values)
	if descriptions == "" && strings.TrimSpace(command.UserPrompt) == "" {
		return &AiCustomizeResponse{
			Html: command.HtmlContent,
		}, nil
	}

	scope := middlewares.GetScope(ctx)
	aiConfig := ioc.GetDependency[config.AiConfig](scope)
	aiSettings := settings.LoadAiSettings(ctx, aiConfig.DefaultProvider)

	registry := ioc.GetDependency[ai.Registry](scope)
	provider, err := registry.Get(config.AiProvider(aiSettings.Provider))
	if err != nil {
		return nil, fmt.Errorf("getting ai provider: %w", err)
	}

	var cacheKey string
	var cache keyValue.Store
	if aiConfig.CacheTtl > 0 {
		cache = ioc.GetDependency[keyValue.Store](scope)
		cacheKey, err = customize.CacheKey(aiSettings.Provider, command.Request)
		if err != nil {
			return nil, err
		}

		cached, err := cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			metrics.AiCacheHits.Inc()
			return &AiCustomizeResponse{
				Html: cached,
			}, nil
		case !errors.Is(err, keyValue.ErrNotFound):
			logging.Logger.Warnf("reading customize cache: %v", err)
		}
	}

	output, err := provider.Complete(ctx, ai.CompletionRequest{
		Prompt:    customize.BuildPrompt(command.HtmlContent, descriptions, command.UserPrompt),
		MaxTokens: customize.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("customizing template: %w", err)
	}

	html := customize.CleanOutput(output, command.HtmlContent)

	if cache != nil {
		err = cache.Set(ctx, cacheKey, html, keyValue.WithExpiration(aiConfig.CacheTtl))
		if err != nil {
			logging.Logger.Warnf("writing customize cache: %v", err)
		}
	}

	return &AiCustomizeResponse{
		Html: html,
	}, nil
}
