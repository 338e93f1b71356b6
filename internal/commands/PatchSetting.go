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

// PatchSetting applies Patch as a json merge patch (RFC 7396) to the stored value.
type PatchSetting struct {
	Key   string
	Patch jsonTypes.JsonDocument
}

func (a PatchSetting) LogRequest() bool {
	return true
}

func (a PatchSetting) LogResponse() bool {
	return true
}

func (a PatchSetting) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.SettingsManage)
}

func (a PatchSetting) GetRequestName() string {
	return "PatchSetting"
}

type PatchSettingResponse struct {
	Key   string
	Value jsonTypes.JsonDocument
}

func HandlePatchSetting(ctx context.Context, command PatchSetting) (*PatchSettingResponse, error) {
	var patch map[string]any
	err := command.Patch.Decode(&patch)
	if err != nil || patch == nil {
		return nil, fmt.Errorf("patch must be a json object: %w", utils.ErrHttpBadRequest)
	}

	scope := middlewares.GetScope(ctx)
	appSettingRepository := ioc.GetDependency[repositories.AppSettingRepository](scope)

	appSetting, err := appSettingRepository.Single(ctx, repositories.NewAppSettingFilter().Key(command.Key))
	if err != nil {
		return nil, fmt.Errorf("getting app setting: %w", err)
	}

	var current map[string]any
	err = appSetting.Value().Decode(&current)
	if err != nil || current == nil {
		current = make(map[string]any)
	}

	value, err := jsonTypes.NewJsonDocument(utils.JsonMergePatch(current, patch))
	if err != nil {
		return nil, err
	}

	appSetting.SetValue(value)
	err = appSettingRepository.Update(ctx, appSetting)
	if err != nil {
		return nil, fmt.Errorf("updating app setting: %w", err)
	}

	return &PatchSettingResponse{
		Key:   appSetting.Key(),
		Value: appSetting.Value(),
	}, nil
}
