package commands

import (
	"Listline/internal/config"
	"Listline/internal/customize"
	"Listline/internal/repositories"
	repositoryMocks "Listline/internal/repositories/mocks"
	"Listline/internal/services/ai"
	aiMocks "Listline/internal/services/ai/mocks"
	"Listline/internal/services/keyValue"
	keyValueMocks "Listline/internal/services/keyValue/mocks"
	"Listline/utils"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AiCustomizeCommandSuite struct {
	suite.Suite
}

func TestAiCustomizeCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AiCustomizeCommandSuite))
}

var customizedHtml = "<html><body><h1>Jane Doe</h1><p>Call 555-0100 today</p></body></html>"

func (s *AiCustomizeCommandSuite) request() AiCustomize {
	return AiCustomize{
		Request: customize.Request{
			HtmlContent: "<html><body><h1>{{agent}}</h1></body></html>",
			Fields: []customize.Field{
				{FieldKey: "agent", Label: "Agent", FieldType: "text"},
			},
			Values: map[string]string{"agent": "Jane Doe"},
		},
	}
}

func (s *AiCustomizeCommandSuite) settingsRepository(ctrl *gomock.Controller) repositories.AppSettingRepository {
	appSettingRepository := repositoryMocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	return appSettingRepository
}

func (s *AiCustomizeCommandSuite) TestNothingToApplyReturnsOriginal() {
	// arrange
	ctx := newTestContext(s.T(), regularUser(), nil)
	cmd := AiCustomize{Request: customize.Request{HtmlContent: "<p>x</p>"}}

	// act
	resp, err := HandleAiCustomize(ctx, cmd)

	// assert
	s.Require().NoError(err)
	s.Equal("<p>x</p>", resp.Html)
}

func (s *AiCustomizeCommandSuite) TestEmptyHtmlIsBadRequest() {
	// arrange
	ctx := newTestContext(s.T(), regularUser(), nil)

	// act
	_, err := HandleAiCustomize(ctx, AiCustomize{})

	// assert
	s.Require().ErrorIs(err, utils.ErrHttpBadRequest)
	s.Equal("HTML content is required", err.Error())
}

func (s *AiCustomizeCommandSuite) TestCallsProviderAndCaches() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	provider := aiMocks.NewMockProvider(ctrl)
	provider.EXPECT().Complete(gomock.Any(), gomock.Cond(func(x ai.CompletionRequest) bool {
		return x.MaxTokens == 8000 &&
			strings.Contains(x.Prompt, `- Agent (agent, type: text): "Jane Doe"`)
	})).Return("```html\n"+customizedHtml+"\n```", nil)

	registry := aiMocks.NewMockRegistry(ctrl)
	registry.EXPECT().Get(config.AiProviderAnthropic).Return(provider, nil)

	cmd := s.request()
	cacheKey, err := customize.CacheKey("anthropic", cmd.Request)
	s.Require().NoError(err)

	cache := keyValueMocks.NewMockStore(ctrl)
	cache.EXPECT().Get(gomock.Any(), cacheKey).Return("", keyValue.ErrNotFound)
	cache.EXPECT().Set(gomock.Any(), cacheKey, customizedHtml, gomock.Any()).Return(nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register(dc, config.AiConfig{DefaultProvider: config.AiProviderAnthropic, CacheTtl: time.Hour})
		register[repositories.AppSettingRepository](dc, s.settingsRepository(ctrl))
		register[ai.Registry](dc, registry)
		register[keyValue.Store](dc, cache)
	})

	// act
	resp, err := HandleAiCustomize(ctx, cmd)

	// assert
	s.Require().NoError(err)
	s.Equal(customizedHtml, resp.Html)
}

func (s *AiCustomizeCommandSuite) TestCacheHitSkipsProvider() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	provider := aiMocks.NewMockProvider(ctrl)
	registry := aiMocks.NewMockRegistry(ctrl)
	registry.EXPECT().Get(gomock.Any()).Return(provider, nil)

	cache := keyValueMocks.NewMockStore(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customizedHtml, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register(dc, config.AiConfig{DefaultProvider: config.AiProviderAnthropic, CacheTtl: time.Hour})
		register[repositories.AppSettingRepository](dc, s.settingsRepository(ctrl))
		register[ai.Registry](dc, registry)
		register[keyValue.Store](dc, cache)
	})

	// act
	resp, err := HandleAiCustomize(ctx, s.request())

	// assert
	s.Require().NoError(err)
	s.Equal(customizedHtml, resp.Html)
}

func (s *AiCustomizeCommandSuite) TestShortOutputFallsBackToOriginal() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	provider := aiMocks.NewMockProvider(ctrl)
	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("sorry", nil)
	registry := aiMocks.NewMockRegistry(ctrl)
	registry.EXPECT().Get(gomock.Any()).Return(provider, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register(dc, config.AiConfig{DefaultProvider: config.AiProviderAnthropic})
		register[repositories.AppSettingRepository](dc, s.settingsRepository(ctrl))
		register[ai.Registry](dc, registry)
	})
	cmd := s.request()

	// act
	resp, err := HandleAiCustomize(ctx, cmd)

	// assert
	s.Require().NoError(err)
	s.Equal(cmd.HtmlContent, resp.Html)
}

func (s *AiCustomizeCommandSuite) TestProviderFailure() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	provider := aiMocks.NewMockProvider(ctrl)
	provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
	registry := aiMocks.NewMockRegistry(ctrl)
	registry.EXPECT().Get(gomock.Any()).Return(provider, nil)

	ctx := newTestContext(s.T(), regularUser(), func(dc *ioc.DependencyCollection) {
		register(dc, config.AiConfig{DefaultProvider: config.AiProviderAnthropic})
		register[repositories.AppSettingRepository](dc, s.settingsRepository(ctrl))
		register[ai.Registry](dc, registry)
	})

	// act
	resp, err := HandleAiCustomize(ctx, s.request())

	// assert
	s.Require().Error(err)
	s.Nil(resp)
}
