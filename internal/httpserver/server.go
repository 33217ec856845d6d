package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/PratikDhanave/data-catalog-service/internal/catalog"
	"github.com/PratikDhanave/data-catalog-service/internal/handlers"
	"github.com/PratikDhanave/data-catalog-service/internal/store"
	"github.com/PratikDhanave/data-catalog-service/internal/validate"
)

// NewRouter wires the public surface: liveness, readiness, Prometheus
// exposition and the catalog CRUD endpoints.
func NewRouter(st store.Interface, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	validate.RegisterTagName()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(Metrics())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Data Catalog API is running!")
	})

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the store dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterEventRoutes(r, catalog.NewEventService(st))
	handlers.RegisterPropertyRoutes(r, catalog.NewPropertyService(st))
	handlers.RegisterTrackingPlanRoutes(r, catalog.NewTrackingPlanService(st))

	return r
}
