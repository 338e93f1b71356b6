package repositories

import (
	"Listline/internal/jsonTypes"
	"Listline/utils"
	"context"
)

type AppSetting struct {
	ModelBase

	key   string
	value jsonTypes.JsonDocument
}

func NewAppSetting(key string, value jsonTypes.JsonDocument) *AppSetting {
	return &AppSetting{
		ModelBase: NewModelBase(),
		key:       key,
		value:     value,
	}
}

func (s *AppSetting) GetScanPointers() []any {
	return []any{
		&s.id,
		&s.auditCreatedAt,
		&s.auditUpdatedAt,
		&s.version,
		&s.key,
		&s.value,
	}
}

func (s *AppSetting) Key() string {
	return s.key
}

func (s *AppSetting) Value() jsonTypes.JsonDocument {
	return s.value
}

func (s *AppSetting) SetValue(value jsonTypes.JsonDocument) {
	s.TrackChange("value", value)
	s.value = value
}

type AppSettingFilter struct {
	key *string
}

func NewAppSettingFilter() AppSettingFilter {
	return AppSettingFilter{}
}

func (f AppSettingFilter) Clone() AppSettingFilter {
	return f
}

func (f AppSettingFilter) Key(key string) AppSettingFilter {
	filter := f.Clone()
	filter.key = &key
	return filter
}

func (f AppSettingFilter) HasKey() bool {
	return f.key != nil
}

func (f AppSettingFilter) GetKey() string {
	return utils.ZeroIfNil(f.key)
}

//go:generate mockgen -destination=./mocks/appsetting_repository.go -package=mocks Listline/internal/repositories AppSettingRepository
type AppSettingRepository interface {
	Single(ctx context.Context, filter AppSettingFilter) (*AppSetting, error)
	First(ctx context.Context, filter AppSettingFilter) (*AppSetting, error)
	Insert(ctx context.Context, appSetting *AppSetting) error
	Update(ctx context.Context, appSetting *AppSetting) error
}
