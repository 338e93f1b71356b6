package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/The127/ioc"
)

//go:generate mockgen -destination=./mocks/db_service.go -package=mocks Listline/internal/database DbService
type DbService interface {
	GetTx() (*sql.Tx, error)
	// Rollback discards the scope's transaction. Close is a no-op afterwards.
	Rollback() error
	Close() error
}

type dbService struct {
	tx *sql.Tx
	dp *ioc.DependencyProvider
}

func NewDbService(dp *ioc.DependencyProvider) DbService {
	return &dbService{
		dp: dp,
	}
}

func (s *dbService) GetTx() (*sql.Tx, error) {
	if s.tx != nil {
		return s.tx, nil
	}

	db := ioc.GetDependency[*sql.DB](s.dp)
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning db transaction: %w", err)
	}
	s.tx = tx

	return tx, nil
}

func (s *dbService) Rollback() error {
	if s.tx == nil {
		return nil
	}

	err := s.tx.Rollback()
	s.tx = nil
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rolling back db transaction: %w", err)
	}

	return nil
}

func (s *dbService) Close() error {
	if s.tx == nil {
		return nil
	}

	commitErr := s.tx.Commit()
	if commitErr == nil {
		s.tx = nil
		return nil
	}

	err := s.Rollback()
	if err != nil {
		return errors.Join(fmt.Errorf("committing db transaction: %w", commitErr), err)
	}

	return fmt.Errorf("committing db transaction: %w", commitErr)
}
