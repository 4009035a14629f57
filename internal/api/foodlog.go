package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/nutrition"
	"github.com/nutrilog/backend/internal/service"
	"github.com/nutrilog/backend/internal/types"
)

// FoodLogService is the surface the log handler needs.
type FoodLogService interface {
	Create(ctx context.Context, userID uuid.UUID, params service.CreateLogParams) (*models.FoodLog, error)
	Update(ctx context.Context, userID, logID uuid.UUID, params service.UpdateLogParams) (*models.FoodLog, error)
	Delete(ctx context.Context, userID, logID uuid.UUID) error
	Daily(ctx context.Context, userID uuid.UUID, date time.Time) (*service.DailyReport, error)
	Stats(ctx context.Context, userID uuid.UUID, period service.StatsPeriod) (*service.StatsReport, error)
}

type FoodLogHandler struct {
	logService FoodLogService
}

func NewFoodLogHandler(logService FoodLogService) *FoodLogHandler {
	return &FoodLogHandler{
		logService: logService,
	}
}

// Daily returns the day's logs with the aggregated summary. The date query
// parameter defaults to today.
func (h *FoodLogHandler) Daily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
			return
		}
		date = parsed
	}

	report, err := h.logService.Daily(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get daily logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":               report.Logs,
		"summary":            report.Summary,
		"date":               report.Date,
		"remaining_calories": report.Summary.RemainingCalories,
	})
}

func (h *FoodLogHandler) CreateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	entry, err := h.logService.Create(c.Request.Context(), userID, service.CreateLogParams{
		FoodID:        foodID,
		Date:          date,
		MealType:      models.MealType(req.MealType),
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		TotalCalories: *req.TotalCalories,
		Notes:         req.Notes,
	})
	if err != nil {
		h.renderLogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "food logged successfully",
		"log":     entry,
	})
}

func (h *FoodLogHandler) UpdateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	var req types.UpdateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.logService.Update(c.Request.Context(), userID, logID, service.UpdateLogParams{
		MealType:      models.MealType(req.MealType),
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		TotalCalories: *req.TotalCalories,
		Notes:         req.Notes,
	})
	if err != nil {
		h.renderLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "food log updated successfully",
		"log":     entry,
	})
}

func (h *FoodLogHandler) DeleteLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := h.logService.Delete(c.Request.Context(), userID, logID); err != nil {
		h.renderLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food log deleted successfully"})
}

func (h *FoodLogHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	period := service.StatsPeriod(c.DefaultQuery("period", "week"))
	report, err := h.logService.Stats(c.Request.Context(), userID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *FoodLogHandler) renderLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, nutrition.ErrUnknownMealType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
