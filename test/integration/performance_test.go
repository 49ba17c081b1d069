package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/atelierhq/design-studio-api/internal/api"
	"github.com/atelierhq/design-studio-api/internal/api/dto"
	"github.com/atelierhq/design-studio-api/internal/domain"
	"github.com/atelierhq/design-studio-api/internal/service"
	"github.com/atelierhq/design-studio-api/internal/utils"
)

type mockGenerationService struct {
	mock.Mock
}

func (m *mockGenerationService) GenerateDesign(ctx context.Context, req service.GenerationRequest) (*dto.DesignResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DesignResponse), args.Error(1)
}

func (m *mockGenerationService) GenerateMarketing(ctx context.Context, req dto.GenerateMarketingRequest) (*dto.MarketingContentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MarketingContentResponse), args.Error(1)
}

func (m *mockGenerationService) GenerateInsights(ctx context.Context, projectID string) (*dto.ProjectInsightsResponse, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProjectInsightsResponse), args.Error(1)
}

type mockDesignService struct {
	mock.Mock
}

func (m *mockDesignService) GetByID(ctx context.Context, id string) (*dto.DesignResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DesignResponse), args.Error(1)
}

func (m *mockDesignService) List(ctx context.Context, filter *domain.DesignFilter) ([]dto.DesignResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DesignResponse), args.Error(1)
}

func (m *mockDesignService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// quotaLimitedGeneration succeeds until its quota slots run out, then fails
// every call with the quota error, like the guarded increment does.
type quotaLimitedGeneration struct {
	remaining int64
}

func (g *quotaLimitedGeneration) GenerateDesign(ctx context.Context, req service.GenerationRequest) (*dto.DesignResponse, error) {
	if atomic.AddInt64(&g.remaining, -1) < 0 {
		return nil, service.ErrQuotaExceeded
	}
	return &dto.DesignResponse{ID: "test-design-id", AccountID: "test-account-id"}, nil
}

func (g *quotaLimitedGeneration) GenerateMarketing(ctx context.Context, req dto.GenerateMarketingRequest) (*dto.MarketingContentResponse, error) {
	return nil, service.ErrQuotaExceeded
}

func (g *quotaLimitedGeneration) GenerateInsights(ctx context.Context, projectID string) (*dto.ProjectInsightsResponse, error) {
	return nil, service.ErrQuotaExceeded
}

func newTestRouter(handler *api.DesignHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(utils.ClaimsKey), jwt.MapClaims{
			"account_id": "test-account-id",
			"plan_tier":  "free",
		})
		c.Next()
	})
	return router
}

func generatePayload() []byte {
	payload := dto.GenerateDesignRequest{
		ProjectID: "test-project-id",
		RoomType:  "living room",
		Style:     "scandinavian",
		Keywords:  "wooden floor, large windows",
	}
	data, _ := json.Marshal(payload)
	return data
}

func BenchmarkGenerateDesign(b *testing.B) {
	mockGeneration := new(mockGenerationService)
	mockDesigns := new(mockDesignService)
	handler := api.NewDesignHandler(mockGeneration, mockDesigns)

	router := newTestRouter(handler)
	router.POST("/designs/generate", handler.GenerateDesign)

	mockGeneration.On("GenerateDesign", mock.Anything, mock.AnythingOfType("service.GenerationRequest")).Return(&dto.DesignResponse{
		ID:        "test-design-id",
		ProjectID: "test-project-id",
		AccountID: "test-account-id",
		RoomType:  "living room",
		Style:     "scandinavian",
		ImageURLs: []string{"https://img/1.png", "https://img/2.png", "https://img/3.png"},
	}, nil)

	payloadBytes := generatePayload()

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/designs/generate", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkListDesigns(b *testing.B) {
	mockGeneration := new(mockGenerationService)
	mockDesigns := new(mockDesignService)
	handler := api.NewDesignHandler(mockGeneration, mockDesigns)

	router := newTestRouter(handler)
	router.GET("/designs", handler.ListDesigns)

	mockResults := make([]dto.DesignResponse, 100)
	for i := 0; i < 100; i++ {
		mockResults[i] = dto.DesignResponse{
			ID:          fmt.Sprintf("design-%d", i),
			ProjectID:   "test-project-id",
			AccountID:   "test-account-id",
			RoomType:    "living room",
			Style:       "scandinavian",
			Description: fmt.Sprintf("Design concept %d", i),
			CreatedAt:   time.Now(),
		}
	}

	mockDesigns.On("List", mock.Anything, mock.AnythingOfType("*domain.DesignFilter")).Return(mockResults, nil)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/designs?start_time=2026-01-01T00:00:00Z&end_time=2026-12-31T23:59:59Z", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestConcurrentGenerationQuota verifies that concurrent generation requests
// against a near-exhausted quota never over-consume it: with 5 slots and 100
// concurrent requests, exactly 5 succeed and the rest are rejected.
func TestConcurrentGenerationQuota(t *testing.T) {
	// Simulates the guarded increment: an atomic counter with 5 slots
	generation := &quotaLimitedGeneration{remaining: 5}
	mockDesigns := new(mockDesignService)
	handler := api.NewDesignHandler(generation, mockDesigns)

	router := newTestRouter(handler)
	router.POST("/designs/generate", handler.GenerateDesign)

	payloadBytes := generatePayload()

	numRequests := 100
	var successCount int32
	var quotaCount int32
	var otherCount int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req, _ := http.NewRequest("POST", "/designs/generate", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			switch w.Code {
			case http.StatusCreated:
				atomic.AddInt32(&successCount, 1)
			case http.StatusForbidden:
				atomic.AddInt32(&quotaCount, 1)
			default:
				atomic.AddInt32(&otherCount, 1)
			}
		}()
	}

	wg.Wait()

	t.Logf("=== Concurrent Quota Test Results ===")
	t.Logf("Successful generations: %d", successCount)
	t.Logf("Quota rejections: %d", quotaCount)
	t.Logf("Other failures: %d", otherCount)

	assert.Equal(t, int32(5), successCount, "Exactly the remaining quota should be consumed")
	assert.Equal(t, int32(numRequests-5), quotaCount, "All other requests should be rejected with 403")
	assert.Equal(t, int32(0), otherCount, "No request should fail for another reason")
}

// TestSustainedListLoad runs a sustained mixed read load and checks throughput
// stays reasonable.
func TestSustainedListLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sustained load test in short mode")
	}

	mockGeneration := new(mockGenerationService)
	mockDesigns := new(mockDesignService)
	handler := api.NewDesignHandler(mockGeneration, mockDesigns)

	router := newTestRouter(handler)
	router.GET("/designs", handler.ListDesigns)
	router.GET("/designs/:id", handler.GetDesign)

	mockDesigns.On("List", mock.Anything, mock.AnythingOfType("*domain.DesignFilter")).Return([]dto.DesignResponse{}, nil)
	mockDesigns.On("GetByID", mock.Anything, mock.AnythingOfType("string")).Return(&dto.DesignResponse{ID: "test-design-id"}, nil)

	duration := 5 * time.Second
	startTime := time.Now()
	requestCount := 0

	for time.Since(startTime) < duration {
		req, _ := http.NewRequest("GET", "/designs?room_type=living+room&page=1&page_size=20", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if requestCount%100 == 0 {
			req, _ := http.NewRequest("GET", "/designs/test-design-id", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
		}

		requestCount++
	}

	totalTime := time.Since(startTime)
	throughput := float64(requestCount) / totalTime.Seconds()

	t.Logf("=== Sustained Load Test Results ===")
	t.Logf("Duration: %v", duration)
	t.Logf("Total requests: %d", requestCount)
	t.Logf("Average throughput: %.2f requests/second", throughput)

	assert.True(t, throughput >= 500, "Should maintain at least 500 requests/second under sustained load")
}
