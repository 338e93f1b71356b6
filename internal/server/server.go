package server

import (
	"Listline/internal/authentication"
	"Listline/internal/config"
	"Listline/internal/handlers"
	"Listline/internal/logging"
	"Listline/internal/middlewares"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/The127/ioc"
	gh "github.com/gorilla/handlers"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "Listline/docs"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 20 << 20

type Server struct {
	srv *http.Server
}

func NewRouter(dp *ioc.DependencyProvider, c config.Config) *mux.Router {
	r := mux.NewRouter()

	r.Use(middlewares.RecoverMiddleware())
	r.Use(middlewares.LoggingMiddleware())
	r.Use(middlewares.ScopeMiddleware(dp))

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/metrics", handlers.PrometheusMetrics).Methods(http.MethodGet, http.MethodOptions)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	if c.Storage.Mode == config.StorageModeDirectory {
		fileServer := http.StripPrefix("/files/", http.FileServer(http.Dir(c.Storage.Directory.Path)))
		r.PathPrefix("/files/").Handler(middlewares.NoSniffMiddleware(fileServer)).Methods(http.MethodGet, http.MethodHead)
	}

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.Use(gh.CORS(
		gh.AllowedOrigins(c.Server.AllowedOrigins),
		gh.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "PATCH"}),
		gh.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gh.AllowCredentials(),
		gh.MaxAge(3600),
	))
	apiRouter.Use(middlewares.BodyLimitMiddleware(maxBodyBytes))
	apiRouter.Use(authentication.Middleware(
		authentication.NewTokenVerifier(
			c.Authentication.JwtSecret,
			c.Authentication.Issuer,
			c.Authentication.Audience,
		),
		c.Authentication.InitialAdmins,
	))

	apiRouter.HandleFunc("/templates", handlers.ListTemplates).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/templates", handlers.CreateTemplate).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/templates/{id}", handlers.GetTemplate).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/templates/{id}", handlers.UpdateTemplate).Methods(http.MethodPut, http.MethodOptions)
	apiRouter.HandleFunc("/templates/{id}", handlers.DeleteTemplate).Methods(http.MethodDelete, http.MethodOptions)

	apiRouter.HandleFunc("/campaigns", handlers.ListCampaigns).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/campaigns", handlers.CreateCampaign).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/campaigns/{id}", handlers.UpdateCampaign).Methods(http.MethodPut, http.MethodOptions)
	apiRouter.HandleFunc("/campaigns/{id}", handlers.DeleteCampaign).Methods(http.MethodDelete, http.MethodOptions)

	apiRouter.HandleFunc("/customizations", handlers.ListOwnCustomizations).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/customizations", handlers.CreateCustomization).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/customizations/{id}", handlers.GetCustomization).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/customizations/{id}", handlers.UpdateCustomization).Methods(http.MethodPut, http.MethodOptions)
	apiRouter.HandleFunc("/customizations/{id}", handlers.DeleteCustomization).Methods(http.MethodDelete, http.MethodOptions)
	apiRouter.HandleFunc("/customizations/{id}/publish", handlers.PublishCustomization).Methods(http.MethodPost, http.MethodOptions)

	apiRouter.HandleFunc("/settings", handlers.GetSetting).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/settings", handlers.UpsertSetting).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/settings/{key}", handlers.PatchSetting).Methods(http.MethodPatch, http.MethodOptions)

	apiRouter.HandleFunc("/ai/customize", handlers.AiCustomize).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/ai/edit", handlers.AiEdit).Methods(http.MethodPost, http.MethodOptions)

	apiRouter.HandleFunc("/pdf/generate", handlers.GeneratePdf).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/screenshot/generate", handlers.GenerateScreenshot).Methods(http.MethodPost, http.MethodOptions)
	apiRouter.HandleFunc("/thumbnail/generate", handlers.GenerateThumbnail).Methods(http.MethodPost, http.MethodOptions)

	apiRouter.HandleFunc("/upload", handlers.UploadImage).Methods(http.MethodPost, http.MethodOptions)

	apiRouter.HandleFunc("/admin/stats", handlers.GetAdminStats).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/admin/users", handlers.ListUsers).Methods(http.MethodGet, http.MethodOptions)
	apiRouter.HandleFunc("/admin/users/{id}/role", handlers.UpdateUserRole).Methods(http.MethodPut, http.MethodOptions)

	apiRouter.HandleFunc("/profile", handlers.GetProfile).Methods(http.MethodGet, http.MethodOptions)

	return r
}

func Serve(dp *ioc.DependencyProvider, c config.Config) *Server {
	addr := fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
	logging.Logger.Infof("running server at %s", addr)
	srv := &http.Server{
		Handler:           NewRouter(dp, c),
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go serve(srv)

	return &Server{
		srv: srv,
	}
}

func serve(srv *http.Server) {
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(fmt.Errorf("error while running server: %w", err))
	}
}

// Shutdown waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
