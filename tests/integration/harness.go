package integration

import (
	"Listline/internal/authentication"
	"Listline/internal/authentication/roles"
	"Listline/internal/clock"
	"Listline/internal/config"
	"Listline/internal/database"
	"Listline/internal/mediator"
	"Listline/internal/middlewares"
	"Listline/internal/repositories"
	"Listline/internal/setup"
	"Listline/utils"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
)

const storageBaseUrl = "http://localhost/files"

type harness struct {
	m          mediator.Mediator
	scope      *ioc.DependencyProvider
	systemCtx  context.Context
	adminCtx   context.Context
	userCtx    context.Context
	otherCtx   context.Context
	setTime    clock.TimeSetterFn
	dbName     string
	storageDir string
}

func adminPostgresConfig() config.PostgresConfig {
	return config.PostgresConfig{
		Database: "postgres",
		Host:     "localhost",
		Port:     5732,
		Username: "user",
		Password: "password",
		SslMode:  "disable",
	}
}

func (h *harness) Close() {
	dbConnection := ioc.GetDependency[*sql.DB](h.scope)
	utils.PanicOnError(h.scope.Close, "closing scope")
	utils.PanicOnError(dbConnection.Close, "closing db connection in test")

	db, err := database.ConnectToDatabase(adminPostgresConfig())
	if err != nil {
		panic(err)
	}

	_, err = db.Exec(fmt.Sprintf("drop database %s;", h.dbName))
	if err != nil {
		panic(err)
	}

	utils.PanicOnError(db.Close, "closing initial db connection in test")
	utils.PanicOnError(func() error {
		return os.RemoveAll(h.storageDir)
	}, "removing storage directory")
}

func (h *harness) SetTime(t time.Time) {
	h.setTime(t)
}

func (h *harness) Mediator() mediator.Mediator {
	return h.m
}

func (h *harness) SystemCtx() context.Context {
	return h.systemCtx
}

func (h *harness) AdminCtx() context.Context {
	return h.adminCtx
}

// UserCtx belongs to a regular user owning customizations.
func (h *harness) UserCtx() context.Context {
	return h.userCtx
}

// OtherCtx belongs to a second regular user.
func (h *harness) OtherCtx() context.Context {
	return h.otherCtx
}

func (h *harness) StorageDir() string {
	return h.storageDir
}

func (h *harness) Scope() *ioc.DependencyProvider {
	return h.scope
}

func testConfig(pc config.PostgresConfig, storageDir string) config.Config {
	var c config.Config
	c.Database.Mode = config.DatabaseModePostgres
	c.Database.Postgres = pc
	c.Cache.Mode = config.CacheModeMemory
	c.Secrets.Mode = config.SecretsModeConfig
	c.Renderer.Mode = config.RendererModeNone
	c.Mail.Mode = config.MailModeNone
	c.Queue.Mode = config.QueueModeNoop
	c.Storage.Mode = config.StorageModeDirectory
	c.Storage.Directory.Path = storageDir
	c.Storage.PublicBaseUrl = storageBaseUrl
	c.Ai.DefaultProvider = config.AiProviderAnthropic
	c.Ai.Timeout = 5 * time.Second
	return c
}

func newIntegrationTestHarness() *harness {
	ctx := context.Background()
	dc := ioc.NewDependencyCollection()
	clockService, timeSetter := clock.NewMockServiceNow()

	sqlbuilder.DefaultFlavor = sqlbuilder.PostgreSQL

	dbName := strings.ReplaceAll("listline_test_"+uuid.New().String(), "-", "")
	pc := adminPostgresConfig()

	db, err := database.ConnectToDatabase(pc)
	if err != nil {
		panic(err)
	}
	_, err = db.Exec(fmt.Sprintf("create database %s;", dbName))
	if err != nil {
		panic(err)
	}
	utils.PanicOnError(db.Close, "closing initial db connection in test")

	pc.Database = dbName
	err = database.Migrate(pc)
	if err != nil {
		panic(fmt.Errorf("failed to create test database: %w", err))
	}

	storageDir, err := os.MkdirTemp("", "listline-storage-")
	if err != nil {
		panic(err)
	}

	c := testConfig(pc, storageDir)

	ioc.RegisterSingleton(dc, func(_ *ioc.DependencyProvider) clock.Service {
		return clockService
	})
	_, err = setup.Database(dc, c.Database.Mode, c.Database.Postgres)
	if err != nil {
		panic(err)
	}
	err = setup.Services(ctx, dc, c)
	if err != nil {
		panic(err)
	}
	setup.Ai(dc, c.Ai)
	_, err = setup.Renderer(dc, c.Renderer)
	if err != nil {
		panic(err)
	}
	setup.Caching(dc, c.Cache.Mode, c.Cache.Redis)
	err = setup.Outbox(dc, c.Queue.Mode)
	if err != nil {
		panic(err)
	}
	setup.Mediator(dc)

	scope := dc.BuildProvider()
	m := ioc.GetDependency[mediator.Mediator](scope)

	ctx = middlewares.ContextWithScope(ctx, scope)
	systemCtx := authentication.ContextWithCurrentUser(ctx, authentication.SystemUser())

	return &harness{
		m:          m,
		scope:      scope,
		systemCtx:  systemCtx,
		adminCtx:   userContext(systemCtx, ctx, "admin@listline.test", roles.Admin),
		userCtx:    userContext(systemCtx, ctx, "agent@listline.test", roles.User),
		otherCtx:   userContext(systemCtx, ctx, "other@listline.test", roles.User),
		setTime:    timeSetter,
		dbName:     dbName,
		storageDir: storageDir,
	}
}

// userContext stores a profile and returns ctx acting as that user.
func userContext(systemCtx context.Context, ctx context.Context, email string, role roles.Role) context.Context {
	scope := middlewares.GetScope(systemCtx)
	profileRepository := ioc.GetDependency[repositories.ProfileRepository](scope)

	profile := repositories.NewProfile(uuid.New(), email, utils.Ptr("Test "+string(role)), role)
	err := profileRepository.Insert(systemCtx, profile)
	if err != nil {
		panic(fmt.Errorf("creating profile %s: %w", email, err))
	}

	return authentication.ContextWithCurrentUser(ctx, authentication.NewCurrentUserWithRole(profile.Id(), email, role))
}
