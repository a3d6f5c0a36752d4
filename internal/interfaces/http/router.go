// Package http wires the gin engine, middleware and routes, and owns the
// HTTP server lifecycle.
package http

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/monitoring"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/ratelimit"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/interfaces/http/handlers"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/interfaces/http/middleware"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/errors"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// Router assembles the HTTP surface of the risk service.
type Router struct {
	engine        *gin.Engine
	config        *config.Config
	log           logger.Logger
	metrics       *monitoring.Metrics
	limiter       ratelimit.Limiter
	riskHandler   *handlers.RiskHandler
	ratingHandler *handlers.RatingHandler
	trendHandler  *handlers.TrendHandler
	healthHandler *handlers.HealthHandler
	server        *http.Server
}

// NewRouter creates the router. Call Start to serve.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	metrics *monitoring.Metrics,
	limiter ratelimit.Limiter,
	riskHandler *handlers.RiskHandler,
	ratingHandler *handlers.RatingHandler,
	trendHandler *handlers.TrendHandler,
	healthHandler *handlers.HealthHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{
		engine:        gin.New(),
		config:        cfg,
		log:           log.WithComponent("http"),
		metrics:       metrics,
		limiter:       limiter,
		riskHandler:   riskHandler,
		ratingHandler: ratingHandler,
		trendHandler:  trendHandler,
		healthHandler: healthHandler,
	}
}

// SetupRoutes registers middleware and routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.Observability(
		otel.Tracer(constants.ServiceName), r.metrics, r.log))

	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	r.engine.Use(cors.New(corsConfig))

	r.engine.GET("/health/live", r.healthHandler.Live)
	r.engine.GET("/health/ready", r.healthHandler.Ready)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if r.config.Server.PprofEnabled {
		pprof.Register(r.engine)
	}

	v1 := r.engine.Group("/api/v1")
	{
		risk := v1.Group("/risk")
		{
			risk.POST("/score", r.riskHandler.ComputeScore)
			risk.GET("/predictions/:vendor_id", r.riskHandler.GetPrediction)
			risk.GET("/anomalies/:vendor_id", r.riskHandler.GetAnomalies)
		}

		vendors := v1.Group("/vendors")
		{
			vendors.POST("/:vendor_id/rating", r.ratingHandler.ComputeRating)
			vendors.GET("/:vendor_id/rating", r.ratingHandler.GetRating)
			vendors.GET("/:vendor_id/benchmark", r.ratingHandler.GetBenchmark)
		}

		analytics := v1.Group("/analytics")
		analytics.Use(middleware.RateLimit(r.limiter, constants.RateLimitScopeAnalytics, r.metrics, r.log))
		{
			analytics.GET("/trends", r.trendHandler.GetTrends)
		}
	}

	internal := r.engine.Group("/_internal")
	internal.Use(middleware.RequireInternalToken(r.config.Auth.InternalTokenSecret, r.log))
	internal.Use(middleware.RateLimit(r.limiter, constants.RateLimitScopeInternal, r.metrics, r.log))
	{
		internal.POST("/vendors/:vendor_id/rating/recompute", r.ratingHandler.ComputeRating)
		internal.POST("/vendors/:vendor_id/anomalies/sweep", r.riskHandler.GetAnomalies)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		dto.SendError(c, errors.ErrNotFound("route", c.Request.URL.Path))
	})
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (r *Router) Start() error {
	r.SetupRoutes()

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		r.log.Info(context.Background(), "http server listening", logger.Fields{"addr": addr})
		if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		r.log.Info(context.Background(), "shutting down", logger.Fields{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return r.server.Shutdown(ctx)
}
