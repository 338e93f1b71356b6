package postgres

import (
	"Listline/internal/logging"
	"Listline/internal/repositories"
	"Listline/utils"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

type campaignRepository struct {
}

func NewCampaignRepository() repositories.CampaignRepository {
	return &campaignRepository{}
}

func (r *campaignRepository) selectQuery(filter repositories.CampaignFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"id",
		"audit_created_at",
		"audit_updated_at",
		"version",
		"name",
		"color",
	).From("campaigns")

	if filter.HasId() {
		s.Where(s.Equal("id", filter.GetId()))
	}

	if filter.HasOrder() {
		filter.GetOrderInfo().Apply(s)
	} else {
		s.OrderByAsc("name")
	}

	return s
}

func (r *campaignRepository) List(ctx context.Context, filter repositories.CampaignFilter) ([]*repositories.Campaign, int, error) {
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

	var campaigns []*repositories.Campaign
	var totalCount int
	for rows.Next() {
		campaign := repositories.Campaign{
			ModelBase: repositories.NewModelBase(),
		}
		err = rows.Scan(append(campaign.GetScanPointers(), &totalCount)...)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}
		campaigns = append(campaigns, &campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating rows: %w", err)
	}

	if len(campaigns) == 0 {
		totalCount, err = countAll(ctx, tx, s)
		if err != nil {
			return nil, 0, err
		}
	}

	return campaigns, totalCount, nil
}

func (r *campaignRepository) Single(ctx context.Context, filter repositories.CampaignFilter) (*repositories.Campaign, error) {
	campaign, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, utils.ErrCampaignNotFound
	}
	return campaign, nil
}

func (r *campaignRepository) First(ctx context.Context, filter repositories.CampaignFilter) (*repositories.Campaign, error) {
	tx, err := getTx(ctx)
	if err != nil {
		return nil, err
	}

	s := r.selectQuery(filter)
	s.Limit(1)

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	row := tx.QueryRowContext(ctx, query, args...)

	campaign := repositories.Campaign{
		ModelBase: repositories.NewModelBase(),
	}
	err = row.Scan(campaign.GetScanPointers()...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil

	case err != nil:
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	return &campaign, nil
}

func (r *campaignRepository) Insert(ctx context.Context, campaign *repositories.Campaign) error {
	s := sqlbuilder.InsertInto("campaigns").
		Cols("name", "color").
		Values(campaign.Name(), campaign.Color())

	err := insertRow(ctx, s, campaign.InsertTargets())
	if err != nil {
		return err
	}

	campaign.ClearChanges()
	return nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *repositories.Campaign) error {
	return updateRow(ctx, "campaigns", campaign)
}

func (r *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := getTx(ctx)
	if err != nil {
		return err
	}

	s := sqlbuilder.DeleteFrom("campaigns")
	s.Where(s.Equal("id", id))

	query, args := s.Build()
	logging.Logger.Debug("executing sql: ", query)
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing delete: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return utils.ErrCampaignNotFound
	}

	return nil
}
