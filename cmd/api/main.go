// @title       Listline API
// @description Listing flyer templates, campaigns and personalized customizations.
// @BasePath    /

// Security schemes for the "Authorize" button (Swagger 2.0):
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"Listline/internal/authentication"
	"Listline/internal/config"
	"Listline/internal/database"
	"Listline/internal/jobs"
	"Listline/internal/logging"
	"Listline/internal/metrics"
	"Listline/internal/middlewares"
	"Listline/internal/quorum"
	"Listline/internal/retry"
	"Listline/internal/server"
	"Listline/internal/services/rendering"
	"Listline/internal/settings"
	"Listline/internal/setup"
	"Listline/utils"
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/The127/ioc"

	"Listline/docs"

	"github.com/huandu/go-sqlbuilder"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config.Init()
	configureSwaggerFromConfig()

	sqlbuilder.DefaultFlavor = sqlbuilder.PostgreSQL

	logging.Init()
	metrics.Init()

	retry.FiveTimes(func() error {
		return database.Migrate(config.C.Database.Postgres)
	}, "failed to migrate database")

	ctx := context.Background()
	dc := ioc.NewDependencyCollection()

	setup.Clock(dc)
	_, err := setup.Database(dc, config.C.Database.Mode, config.C.Database.Postgres)
	if err != nil {
		logging.Logger.Fatalf("failed to set up database: %v", err)
	}

	err = setup.Services(ctx, dc, config.C)
	if err != nil {
		logging.Logger.Fatalf("failed to set up services: %v", err)
	}

	setup.Ai(dc, config.C.Ai)

	renderer, err := setup.Renderer(dc, config.C.Renderer)
	if err != nil {
		logging.Logger.Fatalf("failed to set up renderer: %v", err)
	}

	setup.Caching(dc, config.C.Cache.Mode, config.C.Cache.Redis)

	err = setup.Outbox(dc, config.C.Queue.Mode)
	if err != nil {
		logging.Logger.Fatalf("failed to set up outbox: %v", err)
	}

	setup.Mediator(dc)
	dp := dc.BuildProvider()

	initApplication(dp)

	jobRunner := newLeaderJobs(dp, renderer)
	leaderElection, err := quorum.NewLeaderElectionFactory().
		OnLeaderChange(jobRunner.onLeaderChange).
		Build(config.C.LeaderElection)
	if err != nil {
		logging.Logger.Fatalf("failed to build leader election: %v", err)
	}

	electionCtx, cancelElection := context.WithCancel(middlewares.ContextWithScope(ctx, dp))
	err = leaderElection.Start(electionCtx)
	if err != nil {
		panic(fmt.Errorf("failed to start leader election: %s", err.Error()))
	}

	srv := server.Serve(dp, config.C)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	logging.Logger.Infow("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		logging.Logger.Errorf("failed to shut down server: %v", err)
	}

	cancelElection()
	err = leaderElection.Stop()
	if err != nil {
		logging.Logger.Errorf("failed to stop leader election: %v", err)
	}
	jobRunner.stop()

	err = renderer.Close()
	if err != nil {
		logging.Logger.Errorf("failed to close renderer: %v", err)
	}

	_ = logging.Logger.Sync()
}

// leaderJobs runs the background jobs while this node holds leadership.
type leaderJobs struct {
	mu        sync.Mutex
	dp        *ioc.DependencyProvider
	renderer  rendering.Renderer
	scheduler *jobs.Scheduler
}

func newLeaderJobs(dp *ioc.DependencyProvider, renderer rendering.Renderer) *leaderJobs {
	return &leaderJobs{
		dp:       dp,
		renderer: renderer,
	}
}

func (l *leaderJobs) onLeaderChange(isLeader bool) {
	if !isLeader {
		l.stop()
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.scheduler != nil {
		return
	}

	l.scheduler = jobs.NewScheduler(jobs.WithOnError(func(err error) {
		logging.Logger.Errorf("an error happened while running a job: %v", err)
	}))

	l.scheduler.Every(
		"outbox_sender",
		time.Second*10,
		jobs.OutboxSendingJob(l.dp),
		jobs.WithStartImmediate(),
		jobs.WithTimeout(time.Minute),
	)

	l.scheduler.Every(
		"renderer_health",
		time.Minute,
		jobs.RendererHealthJob(l.renderer),
		jobs.WithTimeout(30*time.Second),
	)

	logging.Logger.Info("Starting job scheduler")
	l.scheduler.Start(middlewares.ContextWithScope(context.Background(), l.dp))
}

func (l *leaderJobs) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.scheduler == nil {
		return
	}

	logging.Logger.Info("Stopping job scheduler")
	l.scheduler.Stop()
	l.scheduler = nil
}

// initApplication stores the default settings on the first startup.
func initApplication(dp *ioc.DependencyProvider) {
	scope := dp.NewScope()

	ctx := middlewares.ContextWithScope(context.Background(), scope)
	ctx = authentication.ContextWithCurrentUser(ctx, authentication.SystemUser())

	err := settings.EnsureAiSettings(ctx, config.C.Ai.DefaultProvider)
	if err != nil {
		logging.Logger.Fatalf("failed to create default ai settings: %v", err)
	}

	utils.PanicOnError(scope.Close, "failed closing scope to init application")
}

func configureSwaggerFromConfig() {
	if config.C.Server.ExternalUrl != "" {
		if u, err := url.Parse(config.C.Server.ExternalUrl); err == nil {
			if u.Host != "" {
				docs.SwaggerInfo.Host = u.Host
			}

			if u.Scheme != "" {
				docs.SwaggerInfo.Schemes = []string{u.Scheme}
			}
		}
	} else {
		docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", config.C.Server.Host, config.C.Server.Port)
	}

	if len(docs.SwaggerInfo.Schemes) == 0 {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	docs.SwaggerInfo.BasePath = "/"
}
