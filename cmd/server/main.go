package main

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	appservice "github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/service"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/events"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/monitoring"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/persistence/postgres"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/persistence/redis"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/ratelimit"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/secrets"
	httpiface "github.com/Facely1er/vendor-soluce-portal-sub001/internal/interfaces/http"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/interfaces/http/handlers"
)

func main() {
	ctx := context.Background()

	startupLogger, err := monitoring.NewZapLogger(&config.LogConfig{Level: "info", Format: "json"})
	if err != nil {
		log.Fatalf("failed to create startup logger: %v", err)
	}

	cfg, watcher, err := config.LoadConfig(startupLogger)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := monitoring.NewZapLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	cleanup, err := monitoring.InitTracer(&cfg.Tracing)
	if err != nil {
		appLogger.Fatal(ctx, "failed to initialize tracer", err)
	}
	defer cleanup()

	if err := secrets.LoadDatabasePassword(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal(ctx, "failed to load database credentials from vault", err)
	}

	gormDB, err := postgres.NewGormDB(&cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to database", err)
	}
	pgConn, err := postgres.NewDBConnection(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to create pgx pool", err)
	}
	defer pgConn.Close()

	redisConn, err := redis.NewConnection(&cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal(ctx, "failed to connect to redis", err)
	}
	defer redisConn.Close()

	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(&cfg.Kafka, appLogger)
	} else {
		publisher = events.NewNoopPublisher()
	}
	defer publisher.Close()

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	cacheManager := redis.NewCacheManager(redisConn.Client(), appLogger)
	limiter := ratelimit.NewRedisLimiter(
		redisConn.Client(), cfg.RateLimit.AnalyticsRPM, cfg.RateLimit.BurstSize, appLogger)

	repos := appservice.Repositories{
		Profiles:    postgres.NewProfileRepository(gormDB),
		Assessments: postgres.NewAssessmentRepository(gormDB),
		Predictions: postgres.NewPredictionRepository(gormDB),
		Anomalies:   postgres.NewAnomalyRepository(gormDB),
		Ratings:     postgres.NewRatingRepository(gormDB, cfg.Engine.RatingWeights),
		Trends:      postgres.NewTrendReadRepository(pgConn),
	}

	riskSvc := appservice.NewRiskAppService(
		repos, cacheManager, publisher, metrics, cfg.Engine, appLogger)
	watcher.OnEngineChange(riskSvc.ApplyEngineConfig)

	router := httpiface.NewRouter(
		cfg,
		appLogger,
		metrics,
		limiter,
		handlers.NewRiskHandler(riskSvc, appLogger),
		handlers.NewRatingHandler(riskSvc, appLogger),
		handlers.NewTrendHandler(riskSvc, appLogger),
		handlers.NewHealthHandler(map[string]handlers.HealthChecker{
			"postgres": pgConn,
			"redis":    redisConn,
		}, appLogger),
	)

	if err := router.Start(); err != nil {
		appLogger.Fatal(ctx, "http server exited with error", err)
	}
	appLogger.Info(ctx, "shutdown complete")
}
