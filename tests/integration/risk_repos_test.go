//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	pginfra "github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/persistence/postgres"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// startPostgres brings up a disposable PostgreSQL instance and applies the
// service migrations to it.
func startPostgres(t *testing.T) (connStr string, dbCfg *config.DatabaseConfig) {
	t.Helper()
	if os.Getenv("SKIP_DOCKER_TESTS") == "true" {
		t.Skip("Skipping Docker-dependent tests")
	}

	ctx := context.Background()
	pgContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("riskdb"),
		postgres.WithUsername("risk"),
		postgres.WithPassword("risk"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dbCfg = &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "risk",
		Password: "risk",
		Database: "riskdb",
		SSLMode:  "disable",
	}

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../migrations/0001_risk_tables.sql")
	require.NoError(t, err)
	sqlBytes, err := os.ReadFile(migrationsPath)
	require.NoError(t, err)
	require.NoError(t, db.Exec(string(sqlBytes)).Error)

	return connStr, dbCfg
}

func TestRatingRepository_Postgres(t *testing.T) {
	connStr, _ := startPostgres(t)
	ctx := context.Background()

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	repo := pginfra.NewRatingRepository(db, models.DefaultRatingWeights())

	// Missing rating reads as absent, not as an error.
	rating, err := repo.GetVendorRating(ctx, "vendor-1")
	require.NoError(t, err)
	assert.Nil(t, rating)

	require.NoError(t, db.Exec(
		`INSERT INTO vendors (id, org_id, name, industry, status) VALUES
		 ('vendor-1', 'org-1', 'Acme', 'Financial', 'approved'),
		 ('vendor-2', 'org-1', 'Bolt', 'Financial', 'approved'),
		 ('vendor-3', 'org-1', 'Crow', 'Financial', 'pending')`).Error)

	now := time.Now().UTC().Truncate(time.Microsecond)
	first := &models.VendorRating{
		VendorID:             "vendor-1",
		OverallRating:        70,
		AssessmentScore:      80,
		ComplianceScore:      100,
		ResponseTimeScore:    60,
		CompletionRate:       90,
		SecurityPostureScore: 85,
		CalculatedAt:         now,
	}
	require.NoError(t, repo.UpsertVendorRating(ctx, first))

	// Recompute overwrites in place through the conflict clause.
	first.OverallRating = 91
	require.NoError(t, repo.UpsertVendorRating(ctx, first))

	var count int64
	require.NoError(t, db.Table("vendor_ratings").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rating, err = repo.GetVendorRating(ctx, "vendor-1")
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, float64(91), rating.OverallRating)
	assert.Equal(t, models.DefaultRatingWeights(), rating.Weights)

	second := *first
	second.VendorID = "vendor-2"
	second.OverallRating = 55
	require.NoError(t, repo.UpsertVendorRating(ctx, &second))
	third := *first
	third.VendorID = "vendor-3"
	third.OverallRating = 99
	require.NoError(t, repo.UpsertVendorRating(ctx, &third))

	// Pending vendors stay out of the industry pool.
	ratings, err := repo.ListByIndustry(ctx, "Financial")
	require.NoError(t, err)
	assert.ElementsMatch(t, []float64{91, 55}, ratings)
}

func TestTrendReadRepository_Postgres(t *testing.T) {
	connStr, dbCfg := startPostgres(t)
	ctx := context.Background()

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		`INSERT INTO vendors (id, org_id, name, industry, status) VALUES
		 ('vendor-1', 'org-1', 'Acme', 'Financial', 'approved'),
		 ('vendor-9', 'org-2', 'Zed', 'Financial', 'approved')`).Error)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	insert := `INSERT INTO risk_assessments
		(id, subject_id, vendor_id, assessment_type, calculated_score, risk_level, next_due, assessed_at, created_at)
		VALUES (?, ?, ?, 'vendor', ?, ?, ?, ?, ?)`
	rows := []struct {
		id       string
		vendorID string
		score    int
		level    string
		at       time.Time
	}{
		{"ra-1", "vendor-1", 60, "medium", day.Add(2 * time.Hour)},
		{"ra-2", "vendor-1", 80, "high", day.Add(5 * time.Hour)},
		{"ra-3", "vendor-1", 95, "critical", day.Add(26 * time.Hour)},
		// Belongs to another org and must not leak into the series.
		{"ra-4", "vendor-9", 10, "low", day.Add(3 * time.Hour)},
	}
	for _, row := range rows {
		require.NoError(t, db.Exec(insert,
			row.id, row.vendorID, row.vendorID, row.score, row.level,
			row.at.AddDate(0, 3, 0), row.at, row.at).Error)
	}

	conn, err := pginfra.NewDBConnection(ctx, dbCfg, logger.NewNoopLogger())
	require.NoError(t, err)
	defer conn.Close()

	repo := pginfra.NewTrendReadRepository(conn)
	points, err := repo.DailyRiskSeries(ctx, "org-1", day.AddDate(0, 0, -1), day.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, float64(70), points[0].AverageScore)
	assert.Equal(t, 1, points[0].HighCount)
	assert.Equal(t, 0, points[0].CriticalCount)
	assert.Equal(t, float64(95), points[1].AverageScore)
	assert.Equal(t, 1, points[1].CriticalCount)
	assert.True(t, points[0].Date.Before(points[1].Date))
}
