package postgres

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"Listline/internal/repositories/postgres/pghelpers"
	"Listline/utils"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

type profileRepository struct {
}

func NewProfileRepository() repositories.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) selectQuery(filter repositories.ProfileFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"email",
		"full_name",
		"role",
	).From("profiles")

	if filter.HasId() {
		s.Where(s.Equal("id", filter.GetId()))
	}

	if filter.HasEmail() {
		s.Where(s.Equal("lower(email)", strings.ToLower(filter.GetEmail())))
	}

	if filter.HasRole() {
		s.Where(s.Equal("role", filter.GetRole()))
	}

	if filter.HasOrder() {
		filter.GetOrderInfo().Apply(s)
	} else {
		s.OrderByDesc("audit_created_at")
	}

	if filter.HasPagination() {
		filter.GetPagingInfo().Apply(s)
	}

	return s
}

func (r *profileRepository) List(ctx context.Context, filter repositories.ProfileFilter) ([]*repositories.Profile, int, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	s := r.selectQuery(filter)
	s.SelectMore("count(*) over()")

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying db: %w", err)
	}
	defer utils.PanicOnError(rows.Close, "closing rows")

	var profiles []*repositories.Profile
	var totalCount int
	for rows.Next() {
		profile := repositories.Profile{
			ModelBase: repositories.NewModelBase(),
		}
		err = rows.Scan(append(profile.GetScanPointers(), &totalCount)...)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating rows: %w", err)
	}

	if len(profiles) == 0 {
		totalCount, err = countAll(ctx, tx, s)
		if err != nil {
			return nil, 0, err
		}
	}

	return profiles, totalCount, nil
}

func (r *profileRepository) Single(ctx context.Context, filter repositories.ProfileFilter) (*repositories.Profile, error) {
	profile, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}

func (r *profileRepository) First(ctx context.Context, filter repositories.ProfileFilter) (*repositories.Profile, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	s := r.selectQuery(filter)
	s.Limit(1)

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	row := tx.QueryRowContext(ctx, query, args...)

	profile := repositories.Profile{
		ModelBase: repositories.NewModelBase(),
	}
	err = row.Scan(profile.GetScanPointers()...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil

	case err != nil:
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) Insert(ctx context.Context, profile *repositories.Profile) error {
	s := sqlbuilder.InsertInto("profiles").
		Cols("id", "email", "full_name", "role").
		Values(
			profile.Id(),
			profile.Email(),
			pghelpers.WrapStringPointer(profile.FullName()),
			profile.Role(),
		).
		SQL("ON CONFLICT DO NOTHING")

	err := insertRow(ctx, s, profile.InsertTargets())
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.ErrProfileExists
	}
	if err != nil {
		return err
	}

	profile.ClearChanges()
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *repositories.Profile) error {
	return updateRow(ctx, "profiles", profile)
}
