package setup

import (
	"Listline/internal/config"
	"Listline/internal/database"
	"Listline/internal/repositories"
	"Listline/internal/repositories/postgres"
	"database/sql"
	"fmt"

	"github.com/The127/ioc"
)

// Database connects to the database and registers the scoped transaction
// service together with the repositories.
func Database(dc *ioc.DependencyCollection, mode config.DatabaseMode, pc config.PostgresConfig) (*sql.DB, error) {
	switch mode {
	case config.DatabaseModePostgres:
		db, err := database.ConnectToDatabase(pc)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) *sql.DB {
			return db
		})
		postgresRepositories(dc)

		return db, nil

	default:
		return nil, fmt.Errorf("database mode %q missing or not supported", mode)
	}
}

func postgresRepositories(dc *ioc.DependencyCollection) {
	ioc.RegisterScoped(dc, func(dp *ioc.DependencyProvider) database.DbService {
		return database.NewDbService(dp)
	})
	ioc.RegisterCloseHandler(dc, func(dbService database.DbService) error {
		return dbService.Close()
	})

	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.TemplateRepository {
		return postgres.NewTemplateRepository()
	})
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.TemplateFieldRepository {
		return postgres.NewTemplateFieldRepository()
	})
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.CampaignRepository {
		return postgres.NewCampaignRepository()
	})
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.CustomizationRepository {
		return postgres.NewCustomizationRepository()
	})
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.ProfileRepository {
		return postgres.NewProfileRepository()
	})
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.AppSettingRepository {
		return postgres.NewAppSettingRepository()
	})
	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) repositories.OutboxMessageRepository {
		return postgres.NewOutboxMessageRepository()
	})
}
