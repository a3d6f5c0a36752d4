// Package service orchestrates the risk engines over the repositories and
// the supporting infrastructure.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/repository"
	domain "github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/service"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/events"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/monitoring"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/infrastructure/persistence/redis"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/errors"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// recentActivityWindow bounds what counts as recent history for prediction
// confidence and for the anomaly response-time baseline.
const recentActivityWindow = 90 * 24 * time.Hour

// responseSampleSize is how many of the newest completed assessments form
// the "current" response-time average.
const responseSampleSize = 3

// Repositories bundles the storage dependencies of the application service.
type Repositories struct {
	Profiles    repository.ProfileRepository
	Assessments repository.AssessmentRepository
	Predictions repository.PredictionRepository
	Anomalies   repository.AnomalyRepository
	Ratings     repository.RatingRepository
	Trends      repository.TrendRepository
}

// RiskAppService coordinates the domain engines, the repositories, the
// caches and the event publisher. All read fan-out is concurrent; every
// repository call gets one immediate retry before the operation fails as
// repository_unavailable.
type RiskAppService struct {
	repos Repositories

	aggregator *domain.FactorAggregator
	analyzer   *domain.TrendAnalyzer
	detector   *domain.AnomalyDetector
	forecaster *domain.ForecastEngine

	cache        redis.CacheManager
	profileCache *gocache.Cache
	publisher    events.Publisher
	metrics      *monitoring.Metrics
	log          logger.Logger

	mu           sync.RWMutex
	rater        *domain.RatingAggregator
	historyLimit int
	repoTimeout  time.Duration
}

// NewRiskAppService creates the application service.
func NewRiskAppService(
	repos Repositories,
	cache redis.CacheManager,
	publisher events.Publisher,
	metrics *monitoring.Metrics,
	engineCfg config.EngineConfig,
	log logger.Logger,
) *RiskAppService {
	historyLimit := engineCfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = constants.DefaultHistoryLimit
	}
	repoTimeout := time.Duration(engineCfg.RepositoryTimeout) * time.Second
	if repoTimeout <= 0 {
		repoTimeout = constants.DefaultRepositoryTimeout
	}
	weights := engineCfg.RatingWeights
	if !weights.Valid() || weights == (models.RatingWeights{}) {
		weights = models.DefaultRatingWeights()
	}

	return &RiskAppService{
		repos:        repos,
		aggregator:   domain.NewFactorAggregator(),
		analyzer:     domain.NewTrendAnalyzer(),
		detector:     domain.NewAnomalyDetector(),
		forecaster:   domain.NewForecastEngine(),
		rater:        domain.NewRatingAggregator(weights),
		cache:        cache,
		profileCache: gocache.New(constants.ProfileCacheTTL, 2*constants.ProfileCacheTTL),
		publisher:    publisher,
		metrics:      metrics,
		log:          log.WithComponent("risk_app_service"),
		historyLimit: historyLimit,
		repoTimeout:  repoTimeout,
	}
}

// ApplyEngineConfig swaps in new engine tunables. Called by the config
// watcher on hot reload; in-flight requests keep the values they started with.
func (s *RiskAppService) ApplyEngineConfig(cfg config.EngineConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.HistoryLimit > 0 {
		s.historyLimit = cfg.HistoryLimit
	}
	if cfg.RepositoryTimeout > 0 {
		s.repoTimeout = time.Duration(cfg.RepositoryTimeout) * time.Second
	}
	if cfg.RatingWeights.Valid() && cfg.RatingWeights != (models.RatingWeights{}) {
		s.rater = domain.NewRatingAggregator(cfg.RatingWeights)
	}
	s.log.Info(context.Background(), "engine configuration applied", logger.Fields{
		"history_limit":      s.historyLimit,
		"repository_timeout": s.repoTimeout.String(),
	})
}

func (s *RiskAppService) engineSettings() (*domain.RatingAggregator, int, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rater, s.historyLimit, s.repoTimeout
}

// withRetry runs op, retrying once immediately on failure. A second failure
// surfaces as repository_unavailable.
func (s *RiskAppService) withRetry(ctx context.Context, name string, timeout time.Duration, op func(ctx context.Context) error) error {
	attempt := func() error {
		opCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return op(opCtx)
	}
	err := attempt()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return errors.ErrRepositoryUnavailable(name, err)
	}
	s.log.Warn(ctx, "repository call failed, retrying once", logger.Fields{
		"operation": name,
		"error":     err.Error(),
	})
	if err = attempt(); err != nil {
		return errors.ErrRepositoryUnavailable(name, err)
	}
	return nil
}

// ================================================================================
// Risk Scoring
// ================================================================================

// ComputeRiskScore builds, aggregates and persists a risk assessment for
// the requested subject.
func (s *RiskAppService) ComputeRiskScore(ctx context.Context, req dto.ScoreRequest) (*models.RiskAssessment, error) {
	started := time.Now()
	subject := models.SubjectRef{
		AssetID:        req.AssetID,
		VendorID:       req.VendorID,
		RelationshipID: req.RelationshipID,
	}
	if subject.IsEmpty() {
		return nil, errors.ErrValidation("at least one of asset_id, vendor_id or relationship_id is required")
	}

	_, _, timeout := s.engineSettings()

	var (
		asset  *models.AssetProfile
		vendor *models.VendorProfile
		rel    *models.RelationshipProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	if subject.AssetID != "" {
		g.Go(func() error {
			return s.withRetry(gctx, "get_asset_profile", timeout, func(ctx context.Context) error {
				var err error
				asset, err = s.repos.Profiles.GetAssetProfile(ctx, subject.AssetID)
				return err
			})
		})
	}
	if subject.VendorID != "" {
		g.Go(func() error {
			var err error
			vendor, err = s.getVendorProfile(gctx, subject.VendorID, timeout)
			return err
		})
	}
	if subject.RelationshipID != "" {
		g.Go(func() error {
			return s.withRetry(gctx, "get_relationship_profile", timeout, func(ctx context.Context) error {
				var err error
				rel, err = s.repos.Profiles.GetRelationshipProfile(ctx, subject.RelationshipID)
				return err
			})
		})
	}
	if err := g.Wait(); err != nil {
		s.metrics.RecordComputation("score", "error", time.Since(started))
		return nil, err
	}

	if subject.AssetID != "" && asset == nil {
		return nil, errors.ErrNotFound("asset", subject.AssetID)
	}
	if subject.VendorID != "" && vendor == nil {
		return nil, errors.ErrNotFound("vendor", subject.VendorID)
	}
	if subject.RelationshipID != "" && rel == nil {
		return nil, errors.ErrNotFound("relationship", subject.RelationshipID)
	}

	var factors []models.RiskFactor
	scopes := 0
	assessmentType := models.AssessmentTypeCombined
	if asset != nil {
		factors = append(factors, domain.AssetFactors(asset)...)
		assessmentType = models.AssessmentTypeAsset
		scopes++
	}
	if vendor != nil {
		factors = append(factors, domain.VendorFactors(vendor)...)
		assessmentType = models.AssessmentTypeVendor
		scopes++
	}
	if rel != nil {
		factors = append(factors, domain.RelationshipFactors(rel)...)
		assessmentType = models.AssessmentTypeRelationship
		scopes++
	}
	if scopes > 1 {
		assessmentType = models.AssessmentTypeCombined
	}

	assessment := s.aggregator.BuildAssessment(subject, assessmentType, factors, req.AssessedBy, time.Now().UTC())

	if err := s.withRetry(ctx, "save_risk_assessment", timeout, func(ctx context.Context) error {
		return s.repos.Assessments.SaveRiskAssessment(ctx, assessment)
	}); err != nil {
		s.metrics.RecordComputation("score", "error", time.Since(started))
		return nil, err
	}

	s.publish(ctx, events.RiskEvent{
		Type:      events.EventAssessmentCompleted,
		SubjectID: subject.Primary(),
		Payload:   assessment,
	})
	s.metrics.RecordComputation("score", "success", time.Since(started))
	s.log.Info(ctx, "risk assessment computed", logger.Fields{
		"subject_id": subject.Primary(),
		"type":       string(assessmentType),
		"score":      assessment.CalculatedScore,
		"risk_level": string(assessment.RiskLevel),
	})
	return assessment, nil
}

// ================================================================================
// Prediction
// ================================================================================

// PredictRisk derives a forward-looking risk score for a vendor from its
// assessment and risk score history.
func (s *RiskAppService) PredictRisk(ctx context.Context, vendorID string) (*models.RiskPrediction, error) {
	started := time.Now()
	if vendorID == "" {
		return nil, errors.ErrValidation("vendor_id is required")
	}
	_, limit, timeout := s.engineSettings()

	vendor, assessments, riskScores, err := s.fetchVendorHistory(ctx, vendorID, limit, timeout)
	if err != nil {
		s.metrics.RecordComputation("predict", "error", time.Since(started))
		return nil, err
	}

	now := time.Now().UTC()
	input := domain.PredictionInput{
		VendorID:          vendorID,
		BaseScore:         vendor.OverallRiskScore,
		Industry:          vendor.Industry,
		AssessmentScores:  completedScores(assessments),
		RiskScores:        scoreValues(riskScores),
		LastAssessedAt:    lastCompletedAt(assessments),
		AssessmentCount:   len(assessments),
		RiskHistoryCount:  len(riskScores),
		HasRecentActivity: hasRecentActivity(assessments, riskScores, now),
	}
	prediction := s.analyzer.Predict(input, now)

	// Predictions are regenerable; a failed save degrades to a log line
	// instead of failing the request.
	if err := s.withRetry(ctx, "save_prediction", timeout, func(ctx context.Context) error {
		return s.repos.Predictions.SavePrediction(ctx, prediction)
	}); err != nil {
		s.log.Warn(ctx, "prediction not persisted", logger.Fields{
			"vendor_id": vendorID,
			"error":     err.Error(),
		})
	}

	s.metrics.RecordComputation("predict", "success", time.Since(started))
	return prediction, nil
}

// ================================================================================
// Anomaly Detection
// ================================================================================

// DetectAnomalies runs the behavioral checks for a vendor and persists any
// findings.
func (s *RiskAppService) DetectAnomalies(ctx context.Context, vendorID string) ([]models.AnomalyDetection, error) {
	started := time.Now()
	if vendorID == "" {
		return nil, errors.ErrValidation("vendor_id is required")
	}
	_, limit, timeout := s.engineSettings()

	vendor, assessments, riskScores, err := s.fetchVendorHistory(ctx, vendorID, limit, timeout)
	if err != nil {
		s.metrics.RecordComputation("anomalies", "error", time.Since(started))
		return nil, err
	}

	signals := s.buildAnomalySignals(vendor, assessments, riskScores)
	anomalies := s.detector.Detect(signals, time.Now().UTC())

	if len(anomalies) > 0 {
		if err := s.withRetry(ctx, "save_anomalies", timeout, func(ctx context.Context) error {
			return s.repos.Anomalies.SaveAnomalies(ctx, anomalies)
		}); err != nil {
			s.log.Warn(ctx, "anomalies not persisted", logger.Fields{
				"vendor_id": vendorID,
				"count":     len(anomalies),
				"error":     err.Error(),
			})
		}
		for _, a := range anomalies {
			s.metrics.RecordAnomaly(string(a.Type), string(a.Severity))
			s.publish(ctx, events.RiskEvent{
				Type:      events.EventAnomalyDetected,
				SubjectID: vendorID,
				Payload:   a,
			})
		}
	}

	s.metrics.RecordComputation("anomalies", "success", time.Since(started))
	return anomalies, nil
}

// buildAnomalySignals condenses raw history into the metrics the detector
// inspects. Each signal is flagged absent when history is too thin, so the
// detector skips the check rather than firing on noise.
func (s *RiskAppService) buildAnomalySignals(vendor *models.VendorProfile, assessments []models.AssessmentRecord, riskScores []models.RiskScoreRecord) domain.AnomalySignals {
	signals := domain.AnomalySignals{VendorID: vendor.ID}

	// Response time: the newest few completed turnarounds against the
	// all-time average.
	durations := responseDurations(assessments)
	if len(durations) > responseSampleSize {
		signals.CurrentAvgResponseDays = meanFloat(durations[:responseSampleSize])
		signals.HistoricalAvgResponseDays = meanFloat(durations)
		signals.HasResponseData = true
	}

	scores := completedScores(assessments)
	if len(scores) >= 3 {
		signals.ConsistencyScore = s.analyzer.ConsistencyScore(scores)
		signals.HasConsistencyData = true
	}

	if len(riskScores) >= 2 {
		signals.CurrentScore = riskScores[0].Score
		signals.PreviousScore = riskScores[1].Score
		signals.HasScorePair = true
	}

	switch vendor.ComplianceStatus {
	case models.ComplianceCompliant:
		signals.ComplianceScore = 1.0
		signals.HasComplianceData = true
	case models.CompliancePartial:
		signals.ComplianceScore = 0.6
		signals.HasComplianceData = true
	case models.ComplianceNonCompliant:
		signals.ComplianceScore = 0.2
		signals.HasComplianceData = true
	}

	return signals
}

// ================================================================================
// Vendor Rating
// ================================================================================

// ComputeRating recomputes and stores the rating for a vendor.
func (s *RiskAppService) ComputeRating(ctx context.Context, vendorID string) (*models.VendorRating, error) {
	started := time.Now()
	if vendorID == "" {
		return nil, errors.ErrValidation("vendor_id is required")
	}
	rater, limit, timeout := s.engineSettings()

	var (
		vendor  *models.VendorProfile
		history []models.AssessmentRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vendor, err = s.getVendorProfile(gctx, vendorID, timeout)
		return err
	})
	g.Go(func() error {
		return s.withRetry(gctx, "list_assessments", timeout, func(ctx context.Context) error {
			var err error
			history, err = s.repos.Assessments.ListAssessments(ctx, vendorID, limit)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		s.metrics.RecordComputation("rating", "error", time.Since(started))
		return nil, err
	}
	if vendor == nil {
		return nil, errors.ErrNotFound("vendor", vendorID)
	}

	rating := rater.ComputeRating(vendor, history, time.Now().UTC())

	if err := s.withRetry(ctx, "upsert_vendor_rating", timeout, func(ctx context.Context) error {
		return s.repos.Ratings.UpsertVendorRating(ctx, rating)
	}); err != nil {
		s.metrics.RecordComputation("rating", "error", time.Since(started))
		return nil, err
	}

	// Mirror onto the vendor profile for list views. Best effort; the
	// rating row is the source of truth.
	if err := s.withRetry(ctx, "update_vendor_scores", timeout, func(ctx context.Context) error {
		return s.repos.Profiles.UpdateVendorScores(ctx, vendorID, rating.OverallRating, rating.SecurityPostureScore)
	}); err != nil {
		s.log.Warn(ctx, "vendor profile scores not mirrored", logger.Fields{
			"vendor_id": vendorID,
			"error":     err.Error(),
		})
	}
	s.profileCache.Delete(vendorProfileKey(vendorID))

	if err := s.cache.SetVendorRating(ctx, rating, constants.RatingCacheTTL); err == nil {
		s.metrics.RecordCacheLookup("rating", "store")
	}

	s.publish(ctx, events.RiskEvent{
		Type:      events.EventRatingUpdated,
		SubjectID: vendorID,
		Payload:   rating,
	})
	s.metrics.RecordComputation("rating", "success", time.Since(started))
	s.log.Info(ctx, "vendor rating recomputed", logger.Fields{
		"vendor_id":      vendorID,
		"overall_rating": rating.OverallRating,
	})
	return rating, nil
}

// GetRating returns the stored rating for a vendor, preferring the cache.
func (s *RiskAppService) GetRating(ctx context.Context, vendorID string) (*models.VendorRating, error) {
	if vendorID == "" {
		return nil, errors.ErrValidation("vendor_id is required")
	}
	if rating, err := s.cache.GetVendorRating(ctx, vendorID); err == nil && rating != nil {
		s.metrics.RecordCacheLookup("rating", "hit")
		return rating, nil
	}
	s.metrics.RecordCacheLookup("rating", "miss")

	_, _, timeout := s.engineSettings()
	var rating *models.VendorRating
	if err := s.withRetry(ctx, "get_vendor_rating", timeout, func(ctx context.Context) error {
		var err error
		rating, err = s.repos.Ratings.GetVendorRating(ctx, vendorID)
		return err
	}); err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, errors.ErrNotFound("vendor rating", vendorID)
	}
	_ = s.cache.SetVendorRating(ctx, rating, constants.RatingCacheTTL)
	return rating, nil
}

// Benchmark compares a vendor's industry peers.
func (s *RiskAppService) Benchmark(ctx context.Context, vendorID string) (*models.IndustryBenchmark, error) {
	if vendorID == "" {
		return nil, errors.ErrValidation("vendor_id is required")
	}
	rater, _, timeout := s.engineSettings()

	vendor, err := s.getVendorProfile(ctx, vendorID, timeout)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, errors.ErrNotFound("vendor", vendorID)
	}

	var ratings []float64
	if err := s.withRetry(ctx, "list_ratings_by_industry", timeout, func(ctx context.Context) error {
		var err error
		ratings, err = s.repos.Ratings.ListByIndustry(ctx, vendor.Industry)
		return err
	}); err != nil {
		return nil, err
	}

	benchmark := rater.Benchmark(vendor.Industry, ratings)
	return &benchmark, nil
}

// ================================================================================
// Trend Analytics
// ================================================================================

// GetTrends builds (or serves from cache) the trend report for an
// organization over the requested window.
func (s *RiskAppService) GetTrends(ctx context.Context, orgID string, window models.TrendWindow) (*models.TrendReport, error) {
	started := time.Now()
	if orgID == "" {
		return nil, errors.ErrValidation("org_id is required")
	}
	days := window.Days()
	if days == 0 {
		return nil, errors.ErrValidation(fmt.Sprintf("unknown trend window %q", window))
	}

	if report, err := s.cache.GetTrendReport(ctx, orgID, window); err == nil && report != nil {
		s.metrics.RecordCacheLookup("trend", "hit")
		return report, nil
	}
	s.metrics.RecordCacheLookup("trend", "miss")

	_, _, timeout := s.engineSettings()
	now := time.Now().UTC()
	// Day-aligned so the window covers exactly `days` calendar days and every
	// stored point lands on one of the report's daily slots.
	from := now.Truncate(24*time.Hour).AddDate(0, 0, -(days - 1))

	var series []models.TrendPoint
	if err := s.withRetry(ctx, "daily_risk_series", timeout, func(ctx context.Context) error {
		var err error
		series, err = s.repos.Trends.DailyRiskSeries(ctx, orgID, from, now)
		return err
	}); err != nil {
		s.metrics.RecordComputation("trends", "error", time.Since(started))
		return nil, err
	}

	report := s.forecaster.BuildReport(orgID, window, series, now)
	_ = s.cache.SetTrendReport(ctx, report, constants.TrendCacheTTL)
	s.metrics.RecordComputation("trends", "success", time.Since(started))
	return report, nil
}

// ================================================================================
// Helpers
// ================================================================================

func vendorProfileKey(vendorID string) string {
	return "vendor:" + vendorID
}

// getVendorProfile reads a vendor through the in-process cache. A nil
// result is not cached; missing vendors stay cheap to probe but are always
// re-checked.
func (s *RiskAppService) getVendorProfile(ctx context.Context, vendorID string, timeout time.Duration) (*models.VendorProfile, error) {
	if cached, ok := s.profileCache.Get(vendorProfileKey(vendorID)); ok {
		s.metrics.RecordCacheLookup("profile", "hit")
		return cached.(*models.VendorProfile), nil
	}
	s.metrics.RecordCacheLookup("profile", "miss")

	var vendor *models.VendorProfile
	if err := s.withRetry(ctx, "get_vendor_profile", timeout, func(ctx context.Context) error {
		var err error
		vendor, err = s.repos.Profiles.GetVendorProfile(ctx, vendorID)
		return err
	}); err != nil {
		return nil, err
	}
	if vendor != nil {
		s.profileCache.SetDefault(vendorProfileKey(vendorID), vendor)
	}
	return vendor, nil
}

// fetchVendorHistory fans out the three reads every vendor-centric
// computation needs. The profile read is mandatory; a history read that
// still fails after the retry degrades to empty history, because the
// engines already handle thin history and a partial answer beats none.
func (s *RiskAppService) fetchVendorHistory(ctx context.Context, vendorID string, limit int, timeout time.Duration) (*models.VendorProfile, []models.AssessmentRecord, []models.RiskScoreRecord, error) {
	var (
		vendor      *models.VendorProfile
		assessments []models.AssessmentRecord
		riskScores  []models.RiskScoreRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vendor, err = s.getVendorProfile(gctx, vendorID, timeout)
		return err
	})
	g.Go(func() error {
		err := s.withRetry(gctx, "list_assessments", timeout, func(ctx context.Context) error {
			var err error
			assessments, err = s.repos.Assessments.ListAssessments(ctx, vendorID, limit)
			return err
		})
		if err != nil {
			s.log.Warn(gctx, "assessment history unavailable, proceeding without it", logger.Fields{
				"vendor_id": vendorID,
				"error":     err.Error(),
			})
			assessments = nil
		}
		return nil
	})
	g.Go(func() error {
		err := s.withRetry(gctx, "list_risk_scores", timeout, func(ctx context.Context) error {
			var err error
			riskScores, err = s.repos.Assessments.ListRiskScores(ctx, vendorID, limit)
			return err
		})
		if err != nil {
			s.log.Warn(gctx, "risk score history unavailable, proceeding without it", logger.Fields{
				"vendor_id": vendorID,
				"error":     err.Error(),
			})
			riskScores = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	if vendor == nil {
		return nil, nil, nil, errors.ErrNotFound("vendor", vendorID)
	}
	return vendor, assessments, riskScores, nil
}

// publish emits an event without letting a broker failure surface.
func (s *RiskAppService) publish(ctx context.Context, event events.RiskEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn(ctx, "event publication failed", logger.Fields{
			"type":       event.Type,
			"subject_id": event.SubjectID,
		})
	}
}

// completedScores extracts scores of completed assessments, preserving the
// newest-first ordering.
func completedScores(records []models.AssessmentRecord) []float64 {
	var scores []float64
	for _, r := range records {
		if r.Completed() {
			scores = append(scores, r.Score)
		}
	}
	return scores
}

func scoreValues(records []models.RiskScoreRecord) []float64 {
	scores := make([]float64, 0, len(records))
	for _, r := range records {
		scores = append(scores, r.Score)
	}
	return scores
}

// responseDurations returns completed turnaround times in days, newest first.
func responseDurations(records []models.AssessmentRecord) []float64 {
	var durations []float64
	for _, r := range records {
		if r.Completed() && r.SentAt != nil {
			durations = append(durations, r.CompletedAt.Sub(*r.SentAt).Hours()/24)
		}
	}
	return durations
}

func lastCompletedAt(records []models.AssessmentRecord) *time.Time {
	for _, r := range records {
		if r.Completed() {
			return r.CompletedAt
		}
	}
	return nil
}

func hasRecentActivity(assessments []models.AssessmentRecord, riskScores []models.RiskScoreRecord, now time.Time) bool {
	cutoff := now.Add(-recentActivityWindow)
	for _, r := range assessments {
		if r.CreatedAt.After(cutoff) {
			return true
		}
	}
	for _, r := range riskScores {
		if r.CreatedAt.After(cutoff) {
			return true
		}
	}
	return false
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
