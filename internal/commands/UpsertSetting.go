package commands

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"fmt"

	"github.com/The127/ioc"
)

type UpsertSetting struct {
	Key   string
	Value jsonTypes.JsonDocument
}

func (a UpsertSetting) LogRequest() bool {
	return true
}

func (a UpsertSetting) LogResponse() bool {
	return true
}

func (a UpsertSetting) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.SettingsManage)
}

func (a UpsertSetting) GetRequestName() string {
	return "UpsertSetting"
}

type UpsertSettingResponse struct {
	Key   string
	Value jsonTypes.JsonDocument
}

func HandleUpsertSetting(ctx context.Context, command UpsertSetting) (*UpsertSettingResponse, error) {
	if !command.Value.IsObject() {
		return nil, fmt.Errorf("setting value must be a json object: %w", utils.ErrHttpBadRequest)
	}

	scope := middlewares.GetScope(ctx)
	appSettingRepository := ioc.GetDependency[repositories.AppSettingRepository](scope)

	appSetting, err := appSettingRepository.First(ctx, repositories.NewAppSettingFilter().Key(command.Key))
	if err != nil {
		return nil, fmt.Errorf("getting app setting: %w", err)
	}

	if appSetting == nil {
		appSetting = repositories.NewAppSetting(command.Key, command.Value)
		err = appSettingRepository.Insert(ctx, appSetting)
		if err != nil {
			return nil, fmt.Errorf("inserting app setting: %w", err)
		}
	} else {
		appSetting.SetValue(command.Value)
		err = appSettingRepository.Update(ctx, appSetting)
		if err != nil {
			return nil, fmt.Errorf("updating app setting: %w", err)
		}
	}

	return &UpsertSettingResponse{
		Key:   appSetting.Key(),
		Value: appSetting.Value(),
	}, nil
}
