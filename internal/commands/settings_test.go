package commands

import (
	"Listline/internal/jsonTypes"
	"Listline/internal/repositories"
	"Listline/internal/repositories/mocks"
	"Listline/utils"
	"encoding/json"
	"testing"

	"github.com/The127/ioc"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsCommandSuite struct {
	suite.Suite
}

func TestSettingsCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SettingsCommandSuite))
}

func (s *SettingsCommandSuite) TestUpsertInsertsMissingKey() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Cond(func(x repositories.AppSettingFilter) bool {
		return x.GetKey() == "ai_provider"
	})).Return(nil, nil)
	appSettingRepository.EXPECT().Insert(gomock.Any(), gomock.Cond(func(x *repositories.AppSetting) bool {
		return x.Key() == "ai_provider" && string(x.Value()) == `{"provider":"openai"}`
	})).Return(nil)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.AppSettingRepository](dc, appSettingRepository)
	})

	// act
	resp, err := HandleUpsertSetting(ctx, UpsertSetting{
		Key:   "ai_provider",
		Value: jsonTypes.JsonDocument(`{"provider":"openai"}`),
	})

	// assert
	s.Require().NoError(err)
	s.Equal("ai_provider", resp.Key)
}

func (s *SettingsCommandSuite) TestUpsertUpdatesExistingKey() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	existing := repositories.NewAppSetting("ai_provider", jsonTypes.JsonDocument(`{"provider":"anthropic"}`))
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().First(gomock.Any(), gomock.Any()).Return(existing, nil)
	appSettingRepository.EXPECT().Update(gomock.Any(), gomock.Cond(func(x *repositories.AppSetting) bool {
		return string(x.Value()) == `{"provider":"openai"}`
	})).Return(nil)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.AppSettingRepository](dc, appSettingRepository)
	})

	// act
	_, err := HandleUpsertSetting(ctx, UpsertSetting{
		Key:   "ai_provider",
		Value: jsonTypes.JsonDocument(`{"provider":"openai"}`),
	})

	// assert
	s.Require().NoError(err)
}

func (s *SettingsCommandSuite) TestUpsertRejectsNonObject() {
	// arrange
	ctx := newTestContext(s.T(), adminUser(), nil)

	// act
	_, err := HandleUpsertSetting(ctx, UpsertSetting{
		Key:   "ai_provider",
		Value: jsonTypes.JsonDocument(`"openai"`),
	})

	// assert
	s.Require().ErrorIs(err, utils.ErrHttpBadRequest)
}

func (s *SettingsCommandSuite) TestPatchMergesValue() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	existing := repositories.NewAppSetting("ai_provider", jsonTypes.JsonDocument(`{"provider":"anthropic","systemPrompt":"old"}`))
	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(existing, nil)
	appSettingRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.AppSettingRepository](dc, appSettingRepository)
	})

	// act
	resp, err := HandlePatchSetting(ctx, PatchSetting{
		Key:   "ai_provider",
		Patch: jsonTypes.JsonDocument(`{"systemPrompt":null,"provider":"openai"}`),
	})

	// assert
	s.Require().NoError(err)
	var value map[string]any
	s.Require().NoError(json.Unmarshal(resp.Value, &value))
	s.Equal(map[string]any{"provider": "openai"}, value)
}

func (s *SettingsCommandSuite) TestPatchMissingKeyIsNotFound() {
	// arrange
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	appSettingRepository := mocks.NewMockAppSettingRepository(ctrl)
	appSettingRepository.EXPECT().Single(gomock.Any(), gomock.Any()).Return(nil, utils.ErrAppSettingNotFound)

	ctx := newTestContext(s.T(), adminUser(), func(dc *ioc.DependencyCollection) {
		register[repositories.AppSettingRepository](dc, appSettingRepository)
	})

	// act
	_, err := HandlePatchSetting(ctx, PatchSetting{
		Key:   "missing",
		Patch: jsonTypes.JsonDocument(`{}`),
	})

	// assert
	s.Require().ErrorIs(err, utils.ErrResourceNotFound)
}
