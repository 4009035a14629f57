package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/service"
	"github.com/nutrilog/backend/internal/types"
)

// FoodService is the surface the food handler needs.
type FoodService interface {
	Search(ctx context.Context, params service.FoodSearchParams) ([]models.Food, *service.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error)
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateFoodRequest) (*models.Food, error)
	Categories() []service.CategoryOption
}

type FoodHandler struct {
	foodService FoodService
}

func NewFoodHandler(foodService FoodService) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
	}
}

func (h *FoodHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := service.FoodSearchParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}
	if params.Category != "" && params.Category != "all" && !models.FoodCategory(params.Category).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	foods, pagination, err := h.foodService.Search(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foods":      foods,
		"pagination": pagination,
	})
}

func (h *FoodHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.foodService.Categories()})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	food, err := h.foodService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

func (h *FoodHandler) CreateFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foodService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "food created successfully",
		"food":    food,
	})
}
