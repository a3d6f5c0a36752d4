package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/application/dto"
	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/domain/models"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/errors"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

type MockRiskService struct {
	mock.Mock
}

func (m *MockRiskService) ComputeRiskScore(ctx context.Context, req dto.ScoreRequest) (*models.RiskAssessment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskAssessment), args.Error(1)
}

func (m *MockRiskService) PredictRisk(ctx context.Context, vendorID string) (*models.RiskPrediction, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskPrediction), args.Error(1)
}

func (m *MockRiskService) DetectAnomalies(ctx context.Context, vendorID string) ([]models.AnomalyDetection, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AnomalyDetection), args.Error(1)
}

func (m *MockRiskService) ComputeRating(ctx context.Context, vendorID string) (*models.VendorRating, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VendorRating), args.Error(1)
}

func (m *MockRiskService) GetRating(ctx context.Context, vendorID string) (*models.VendorRating, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VendorRating), args.Error(1)
}

func (m *MockRiskService) Benchmark(ctx context.Context, vendorID string) (*models.IndustryBenchmark, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IndustryBenchmark), args.Error(1)
}

func (m *MockRiskService) GetTrends(ctx context.Context, orgID string, window models.TrendWindow) (*models.TrendReport, error) {
	args := m.Called(ctx, orgID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrendReport), args.Error(1)
}

func newTestRouter(svc *MockRiskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	riskHandler := NewRiskHandler(svc, logger.NewNoopLogger())
	trendHandler := NewTrendHandler(svc, logger.NewNoopLogger())
	engine.POST("/api/v1/risk/score", riskHandler.ComputeScore)
	engine.GET("/api/v1/risk/predictions/:vendor_id", riskHandler.GetPrediction)
	engine.GET("/api/v1/risk/anomalies/:vendor_id", riskHandler.GetAnomalies)
	engine.GET("/api/v1/analytics/trends", trendHandler.GetTrends)
	return engine
}

func TestComputeScore_ReturnsCreatedAssessment(t *testing.T) {
	svc := new(MockRiskService)
	assessment := &models.RiskAssessment{
		ID:              "assessment-1",
		Subject:         models.SubjectRef{VendorID: "vendor-1"},
		Type:            models.AssessmentTypeVendor,
		CalculatedScore: 72,
		RiskLevel:       models.RiskLevelHigh,
		AssessedAt:      time.Now().UTC(),
	}
	svc.On("ComputeRiskScore", mock.Anything, dto.ScoreRequest{VendorID: "vendor-1"}).
		Return(assessment, nil)

	body, _ := json.Marshal(gin.H{"vendor_id": "vendor-1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/score", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestComputeScore_ValidationErrorIs400(t *testing.T) {
	svc := new(MockRiskService)
	svc.On("ComputeRiskScore", mock.Anything, mock.Anything).
		Return(nil, errors.ErrValidation("at least one subject id is required"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/score", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid_request", resp.Error.Code)
}

func TestComputeScore_MalformedBodyIs400(t *testing.T) {
	svc := new(MockRiskService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/score", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ComputeRiskScore", mock.Anything, mock.Anything)
}

func TestGetPrediction_UnknownVendorIs404(t *testing.T) {
	svc := new(MockRiskService)
	svc.On("PredictRisk", mock.Anything, "ghost").
		Return(nil, errors.ErrNotFound("vendor", "ghost"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/risk/predictions/ghost", nil)
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAnomalies_NilBecomesEmptyList(t *testing.T) {
	svc := new(MockRiskService)
	svc.On("DetectAnomalies", mock.Anything, "vendor-1").
		Return([]models.AnomalyDetection(nil), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/risk/anomalies/vendor-1", nil)
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetTrends_DefaultsWindowTo30Days(t *testing.T) {
	svc := new(MockRiskService)
	svc.On("GetTrends", mock.Anything, "org-1", models.Window30Days).
		Return(&models.TrendReport{OrgID: "org-1", Window: models.Window30Days}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends?org_id=org-1", nil)
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertCalled(t, "GetTrends", mock.Anything, "org-1", models.Window30Days)
}

func TestGetTrends_RepositoryOutageIs503(t *testing.T) {
	svc := new(MockRiskService)
	svc.On("GetTrends", mock.Anything, "org-1", models.Window90Days).
		Return(nil, errors.ErrRepositoryUnavailable("daily_risk_series", context.DeadlineExceeded))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends?org_id=org-1&window=90d", nil)
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
