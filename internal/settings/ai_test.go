package settings

import (
	"Listline/internal/config"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/utils"
	"context"
	"errors"
	"testing"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AiSettingsSuite struct {
	suite.Suite
}

func TestAiSettingsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AiSettingsSuite))
}

func (s *AiSettingsSuite) createContext(appSettingRepository repositories.AppSettingRepository) context.Context {
	dc := ioc.NewDependencyCollection()
	ioc.RegisterTransient(dc, func(_ *ioc.DependencyProvider) repositories.AppSettingRepository {
		return appSettingRepository
	})

	scope := dc.BuildProvider()
	s.T().Cleanup(func() {
		utils.PanicOnError(scope.Close, "closing scope")
	})

	return middlewares.ContextWithScope(s.T().Context(), scope)
}

func (s *AiSettingsSuite) setting(value string) *repositories.AppSetting {
	return repositories.NewAppSetting(jsonTypes.AiSettingsKey, jsonTypes.JsonDocument(value))
}

func (s *AiSettingsSuite) TestStoredSettings() {
	// arrange
	ctrl := gomock.NewController(s.T())
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Cond(func(x repositories.AppSettingFilter) bool {
		return x.GetKey() == jsonTypes.AiSettingsKey
	})).Return(s.setting(`{"provider":"openai","systemPrompt":"be brief"}`), nil)
	ctx := s.createContext(appSettingRepository)

	// act
	settings := LoadAiSettings(ctx, config.AiProviderAnthropic)

	// assert
	s.Equal("openai", settings.Provider)
	s.Equal("be brief", settings.SystemPrompt)
}

func (s *AiSettingsSuite) TestMissingSettingsUseDefaults() {
	// arrange
	ctrl := gomock.NewController(s.T())
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(nil, nil)
	ctx := s.createContext(appSettingRepository)

	// act
	settings := LoadAiSettings(ctx, config.AiProviderAnthropic)

	// assert
	s.Equal("anthropic", settings.Provider)
	s.Empty(settings.SystemPrompt)
}

func (s *AiSettingsSuite) TestReadFailureUsesDefaults() {
	// arrange
	ctrl := gomock.NewController(s.T())
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))
	ctx := s.createContext(appSettingRepository)

	// act
	settings := LoadAiSettings(ctx, config.AiProviderOpenAi)

	// assert
	s.Equal("openai", settings.Provider)
}

func (s *AiSettingsSuite) TestUnknownProviderFallsBack() {
	// arrange
	ctrl := gomock.NewController(s.T())
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).
		Return(s.setting(`{"provider":"gemini","systemPrompt":"x"}`), nil)
	ctx := s.createContext(appSettingRepository)

	// act
	settings := LoadAiSettings(ctx, config.AiProviderAnthropic)

	// assert
	s.Equal("anthropic", settings.Provider)
	s.Equal("x", settings.SystemPrompt)
}

func (s *AiSettingsSuite) TestEnsureInsertsWhenMissing() {
	// arrange
	ctrl := gomock.NewController(s.T())
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(nil, nil)
	appSettingRepository.EXPECT().Insert(gomock.Any(), gomock.Cond(func(x *repositories.AppSetting) bool {
		var settings jsonTypes.AiSettings
		return x.Key() == jsonTypes.AiSettingsKey &&
			x.Value().Decode(&settings) == nil &&
			settings.Provider == "anthropic"
	})).Return(nil)
	ctx := s.createContext(appSettingRepository)

	// act
	err := EnsureAiSettings(ctx, config.AiProviderAnthropic)

	// assert
	s.Require().NoError(err)
}

func (s *AiSettingsSuite) TestEnsureKeepsExisting() {
	// arrange
	ctrl := gomock.NewController(s.T())
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).
		Return(s.setting(`{"provider":"openai"}`), nil)
	ctx := s.createContext(appSettingRepository)

	// act
	err := EnsureAiSettings(ctx, config.AiProviderAnthropic)

	// assert
	s.Require().NoError(err)
}
