package settings

import (
	"Listline/internal/config"
	"Listline/internal/jsonTypes"
	"Listline/internal/logging"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"

	"github.com/The127/ioc"
)

// LoadAiSettings reads the ai settings of the request scope. Missing or
// unreadable values and unknown providers fall back to defaultProvider.
func LoadAiSettings(ctx context.Context, defaultProvider config.AiProvider) jsonTypes.AiSettings {
	defaults := jsonTypes.AiSettings{
		Provider: string(defaultProvider),
	}

	scope := middlewares.GetScope(ctx)
	appSettingRepository := ioc.GetDependency[repositories.AppSettingRepository](scope)
	appSetting, err := appSettingRepository.First(ctx, repositories.NewAppSettingFilter().Key(jsonTypes.AiSettingsKey))
	if err != nil {
		logging.Logger.Warnf("reading ai settings, using defaults: %v", err)
		return defaults
	}

	if appSetting == nil {
		return defaults
	}

	var settings jsonTypes.AiSettings
	err = appSetting.Value().Decode(&settings)
	if err != nil {
		logging.Logger.Warnf("decoding ai settings, using defaults: %v", err)
		return defaults
	}

	switch config.AiProvider(settings.Provider) {
	case config.AiProviderAnthropic, config.AiProviderOpenAi:
	default:
		settings.Provider = defaults.Provider
	}

	return settings
}

// EnsureAiSettings stores the default ai settings unless they already exist.
func EnsureAiSettings(ctx context.Context, defaultProvider config.AiProvider) error {
	scope := middlewares.GetScope(ctx)
	appSettingRepository := ioc.GetDependency[repositories.AppSettingRepository](scope)

	existing, err := appSettingRepository.First(ctx, repositories.NewAppSettingFilter().Key(jsonTypes.AiSettingsKey))
	if err != nil {
		return fmt.Errorf("getting ai settings: %w", err)
	}

	if existing != nil {
		return nil
	}

	value, err := jsonTypes.NewJsonDocument(jsonTypes.AiSettings{
		Provider: string(defaultProvider),
	})
	if err != nil {
		return err
	}

	err = appSettingRepository.Insert(ctx, repositories.NewAppSetting(jsonTypes.AiSettingsKey, value))
	if err != nil {
		return fmt.Errorf("inserting ai settings: %w", err)
	}

	logging.Logger.Infof("seeded ai settings with provider %s", defaultProvider)
	return nil
}
