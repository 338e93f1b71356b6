package handlers

import (
	"Listline/internal/middlewares"
	"Listline/utils"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/The127/ioc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthResponseDto struct {
	Status string `json:"status"`
}

// Health reports whether the service can reach its database
// @Summary Health check
// @Tags Monitoring
// @Produce json
// @Success 200 {object} HealthResponseDto
// @Failure 500
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	scope := middlewares.GetScope(ctx)
	db := ioc.GetDependency[*sql.DB](scope)

	err := db.PingContext(ctx)
	if err != nil {
		utils.HandleHttpError(w, fmt.Errorf("pinging database: %w", err))
		return
	}

	writeJson(w, http.StatusOK, HealthResponseDto{
		Status: "ok",
	})
}

// PrometheusMetrics proxies the promhttp handler.
// @Summary     Prometheus metrics
// @Description Exposes Prometheus metrics in text exposition format.
// @Tags        Monitoring
// @Produce     plain
// @Success     200 {string} string "Prometheus exposition format (text/plain; version=0.0.4)"
// @Router      /metrics [get]
func PrometheusMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
