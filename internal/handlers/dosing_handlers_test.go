package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/epeers/gardenfeed/internal/cache"
	"github.com/epeers/gardenfeed/internal/middleware"
	"github.com/epeers/gardenfeed/internal/models"
	"github.com/epeers/gardenfeed/internal/nutrients"
	"github.com/epeers/gardenfeed/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDosingRouter wires the dosing routes without a database.
func setupDosingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewDosingService(nil, cache.NewMemoryCache(time.Minute), nil)
	h := NewDosingHandler(svc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ValidateUser())
	router.POST("/dosing/calculate", h.Calculate)
	router.POST("/dosing/batch", h.CalculateBatch)
	router.POST("/dosing/batch/csv", h.CalculateBatchCSV)
	router.POST("/dosing/transition", h.Transition)
	router.GET("/stages", h.Stages)
	router.GET("/zones/:zone_id/feed-logs", h.ListFeedLogs)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateHandler(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodPost, "/dosing/calculate", `{
		"stage": "vegetative",
		"scale": 500,
		"volume": 5,
		"source_ppm": 0,
		"symptoms": ["mg_deficiency"]
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1200, resp.TargetPPM)
	assert.InDelta(t, 0.20, resp.Modifiers[nutrients.NutrientEpsom], 1e-9)
	assert.InDelta(t, 1.26*1.20*5, resp.Dosing.Grams(nutrients.NutrientEpsom), 1e-6)
	assert.False(t, resp.FeedLogQueued)
	assert.Nil(t, resp.Transition)
}

func TestCalculateHandler_ConflictShortCircuits(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodPost, "/dosing/calculate",
		`{"stage": "flower", "volume": 5, "symptoms": ["k_deficiency", "k_toxicity"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, nutrients.CategoryConflict, resp.Warnings[0].Category)
	assert.Equal(t, nutrients.PriorityCritical, resp.Warnings[0].Priority)
	assert.True(t, resp.Verdict.HasConflict)
}

func TestCalculateHandler_BadRequests(t *testing.T) {
	router := setupDosingRouter()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"stage": `},
		{"unknown stage", `{"stage": "harvest", "volume": 5}`},
		{"unknown symptom", `{"stage": "flower", "volume": 5, "symptoms": ["b_deficiency"]}`},
		{"unknown scale", `{"stage": "flower", "volume": 5, "scale": 640}`},
		{"unknown unit", `{"stage": "flower", "volume": 5, "volume_unit": "qt"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/dosing/calculate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "bad_request")
		})
	}
}

func TestCalculateHandler_RecordWithoutDatabase(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodPost, "/dosing/calculate",
		`{"stage": "flower", "volume": 5, "zone_id": 4, "record": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.HostWarnings, 1)
	assert.Equal(t, models.WarnFeedLogDisabled, resp.HostWarnings[0].Code)
}

func TestCalculateBatchHandler(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodPost, "/dosing/batch", `{"items": [
		{"stage": "propagation", "volume": 2},
		{"stage": "flush", "volume": 2, "source_ppm": 80},
		{"stage": "late_flower", "volume": 2, "scale": 700}
	]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BatchCalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, 400, resp.Results[0].TargetPPM)
	assert.Equal(t, 0, resp.Results[1].TargetPPM)
	assert.Equal(t, 80.0, resp.Results[1].Dosing.FinalPPM)
	assert.Equal(t, 1120, resp.Results[2].TargetPPM)

	w = doJSON(t, router, http.MethodPost, "/dosing/batch", `{"items": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransitionHandler(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodPost, "/dosing/transition",
		`{"stage": "late_flower", "last_feed_ppm": 1600}`)
	require.Equal(t, http.StatusOK, w.Code)

	var advice nutrients.TransitionAdvice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &advice))
	assert.True(t, advice.Recommended)
	assert.Equal(t, nutrients.MaxLuxuryMultiplier, advice.Multiplier)
	require.Len(t, advice.Warnings, 2)
	assert.Equal(t, nutrients.PriorityHigh, advice.Warnings[0].Priority)

	w = doJSON(t, router, http.MethodPost, "/dosing/transition", `{"last_feed_ppm": 1600}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStagesHandler(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodGet, "/stages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Stages, len(nutrients.Stages()))
	assert.Equal(t, nutrients.StagePropagation, resp.Stages[0].Stage)
	assert.Equal(t, nutrients.StageFlush, resp.Stages[len(resp.Stages)-1].Stage)
}

func TestListFeedLogsHandler(t *testing.T) {
	router := setupDosingRouter()

	w := doJSON(t, router, http.MethodGet, "/zones/abc/feed-logs", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/zones/3/feed-logs?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/zones/3/feed-logs", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
