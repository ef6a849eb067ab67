package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/epeers/gardenfeed/internal/middleware"
	"github.com/epeers/gardenfeed/internal/models"
	"github.com/epeers/gardenfeed/internal/services"
	"github.com/gin-gonic/gin"
)

// DosingHandler handles feed calculation endpoints
type DosingHandler struct {
	dosingSvc *services.DosingService
}

// NewDosingHandler creates a new DosingHandler
func NewDosingHandler(dosingSvc *services.DosingService) *DosingHandler {
	return &DosingHandler{
		dosingSvc: dosingSvc,
	}
}

// Calculate godoc
// @Summary Calculate a feed
// @Description Resolve the target concentration and the grams of each nutrient for one reservoir, with grower warnings. Optionally records the feed.
// @Tags dosing
// @Accept json
// @Produce json
// @Param X-User-ID header int false "Grower ID"
// @Param request body models.CalculateRequest true "Feed parameters"
// @Success 200 {object} models.CalculateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dosing/calculate [post]
func (h *DosingHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.dosingSvc.Calculate(c.Request.Context(), &req, middleware.GrowerIDPtr(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CalculateBatch godoc
// @Summary Calculate several feeds
// @Description Calculate up to 50 feeds at once. Results are returned in request order.
// @Tags dosing
// @Accept json
// @Produce json
// @Param X-User-ID header int false "Grower ID"
// @Param request body models.BatchCalculateRequest true "Feeds"
// @Success 200 {object} models.BatchCalculateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dosing/batch [post]
func (h *DosingHandler) CalculateBatch(c *gin.Context) {
	var req models.BatchCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	results, err := h.dosingSvc.CalculateBatch(c.Request.Context(), req.Items, middleware.GrowerIDPtr(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BatchCalculateResponse{Results: results})
}

// CalculateBatchCSV godoc
// @Summary Calculate a feed plan from CSV
// @Description Upload a feed plan spreadsheet (zone_id, stage, volume and optional scale, volume_unit, source_ppm, symptoms, enrichment, root_ball, record, notes columns) and calculate every row.
// @Tags dosing
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header int false "Grower ID"
// @Param file formData file true "Feed plan CSV"
// @Success 200 {object} models.BatchCalculateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dosing/batch/csv [post]
func (h *DosingHandler) CalculateBatchCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "file is required",
		})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	defer f.Close()

	plan, err := ParseFeedPlanCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	if len(plan) == 0 || len(plan) > models.MaxBatchItems {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: fmt.Sprintf("feed plan must have between 1 and %d rows, got %d", models.MaxBatchItems, len(plan)),
		})
		return
	}

	results, err := h.dosingSvc.CalculateBatch(c.Request.Context(), plan, middleware.GrowerIDPtr(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BatchCalculateResponse{Results: results})
}

// Transition godoc
// @Summary Advise on a stage transition
// @Description Compare the last feed against the stage baseline and recommend a luxury uptake multiplier
// @Tags dosing
// @Accept json
// @Produce json
// @Param request body models.TransitionRequest true "Transition parameters"
// @Success 200 {object} nutrients.TransitionAdvice
// @Failure 400 {object} models.ErrorResponse
// @Router /dosing/transition [post]
func (h *DosingHandler) Transition(c *gin.Context) {
	var req models.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	advice, err := h.dosingSvc.Transition(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, advice)
}

// Stages godoc
// @Summary List stage profiles
// @Description Reference base PPMs, nutrient ratios and pH ranges of every grow stage
// @Tags dosing
// @Produce json
// @Success 200 {object} models.StagesResponse
// @Router /stages [get]
func (h *DosingHandler) Stages(c *gin.Context) {
	c.JSON(http.StatusOK, models.StagesResponse{Stages: h.dosingSvc.Stages()})
}

// ListFeedLogs godoc
// @Summary List a zone's feed history
// @Description Most recent feeds of a zone, newest first
// @Tags feed-logs
// @Produce json
// @Param zone_id path int true "Zone ID"
// @Param limit query int false "Maximum number of entries (default 20, max 100)"
// @Success 200 {object} models.FeedLogListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /zones/{zone_id}/feed-logs [get]
func (h *DosingHandler) ListFeedLogs(c *gin.Context) {
	zoneID, err := strconv.ParseInt(c.Param("zone_id"), 10, 64)
	if err != nil || zoneID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid zone ID",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "limit must be a positive integer",
			})
			return
		}
	}

	logs, err := h.dosingSvc.ListFeedLogs(c.Request.Context(), zoneID, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if logs == nil {
		logs = []models.FeedLogListItem{}
	}

	c.JSON(http.StatusOK, models.FeedLogListResponse{ZoneID: zoneID, Logs: logs})
}

func (h *DosingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrFeedLogUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "unavailable",
			Message: "feed log is not configured",
		})
	default:
		middleware.Logger(c).WithError(err).Error("Feed request failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
