package postgres

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

type appSettingRepository struct {
}

func NewAppSettingRepository() repositories.AppSettingRepository {
	return &appSettingRepository{}
}

func (r *appSettingRepository) selectQuery(filter repositories.AppSettingFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"key",
		"value",
	).From("app_settings")

	if filter.HasKey() {
		s.Where(s.Equal("key", filter.GetKey()))
	}

	return s
}

func (r *appSettingRepository) Single(ctx context.Context, filter repositories.AppSettingFilter) (*repositories.AppSetting, error) {
	appSetting, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if appSetting == nil {
		return nil, utils.ErrAppSettingNotFound
	}
	return appSetting, nil
}

func (r *appSettingRepository) First(ctx context.Context, filter repositories.AppSettingFilter) (*repositories.AppSetting, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	s := r.selectQuery(filter)
	s.Limit(1)

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	row := tx.QueryRowContext(ctx, query, args...)

	appSetting := repositories.AppSetting{
		ModelBase: repositories.NewModelBase(),
	}
	err = row.Scan(appSetting.GetScanPointers()...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil

	case err != nil:
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	return &appSetting, nil
}

func (r *appSettingRepository) Insert(ctx context.Context, appSetting *repositories.AppSetting) error {
	s := sqlbuilder.InsertInto("app_settings").
		Cols("key", "value").
		Values(appSetting.Key(), appSetting.Value())

	err := insertRow(ctx, s, appSetting.InsertTargets())
	if err != nil {
		return err
	}

	appSetting.ClearChanges()
	return nil
}

func (r *appSettingRepository) Update(ctx context.Context, appSetting *repositories.AppSetting) error {
	return updateRow(ctx, "app_settings", appSetting)
}
