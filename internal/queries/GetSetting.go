package queries

import (
	"Listline/internal/authentication/permissions"
	"Listline/internal/behaviours"
	"Listline/internal/jsonTypes"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
)

type GetSetting struct {
	Key string
}

func (a GetSetting) LogRequest() bool {
	return true
}

func (a GetSetting) LogResponse() bool {
	return false
}

func (a GetSetting) IsAllowed(ctx context.Context) (behaviours.PolicyResult, error) {
	return behaviours.PermissionBasedPolicy(ctx, permissions.SettingsManage)
}

func (a GetSetting) GetRequestName() string {
	return "GetSetting"
}

// GetSettingResponse is nil when the key has never been stored.
type GetSettingResponse struct {
	Key       string
	Value     jsonTypes.JsonDocument
	UpdatedAt time.Time
}

func HandleGetSetting(ctx context.Context, query GetSetting) (*GetSettingResponse, error) {
	scope := middlewares.GetScope(ctx)

	appSettingRepository := ioc.GetDependency[repositories.AppSettingRepository](scope)
	appSetting, err := appSettingRepository.First(ctx, repositories.NewAppSettingFilter().Key(query.Key))
	if err != nil {
		return nil, fmt.Errorf("getting app setting: %w", err)
	}

	if appSetting == nil {
		return nil, nil
	}

	return &GetSettingResponse{
		Key:       appSetting.Key(),
		Value:     appSetting.Value(),
		UpdatedAt: appSetting.AuditUpdatedAt(),
	}, nil
}
