package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// DBConnection manages the pgx connection pool backing the raw-SQL read
// model queries (daily trend aggregation) and readiness probes.
type DBConnection struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// NewDBConnection creates the pool and performs an initial health check.
func NewDBConnection(ctx context.Context, cfg *config.DatabaseConfig, log logger.Logger) (*DBConnection, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Minute
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleTime) * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info(ctx, "PostgreSQL read pool initialized", logger.Fields{
		"host":      cfg.Host,
		"database":  cfg.Database,
		"max_conns": cfg.MaxConns,
	})
	return &DBConnection{pool: pool, logger: log.WithComponent("DBConnection")}, nil
}

// Pool exposes the underlying pool to repositories.
func (c *DBConnection) Pool() *pgxpool.Pool {
	return c.pool
}

// HealthCheck pings the database with a short deadline.
func (c *DBConnection) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.pool.Ping(ctx)
}

// Close releases the pool.
func (c *DBConnection) Close() {
	c.pool.Close()
}
