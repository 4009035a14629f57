package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/types"
)

var ErrFoodNotFound = errors.New("food not found")

// FoodService handles food catalogue operations. Foods are append-only:
// seeded entries are verified, user-created entries are not, and neither
// kind is ever updated or deleted.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// FoodSearchParams are the query parameters of a food search.
type FoodSearchParams struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

// Pagination describes one page of search results.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// Search matches foods by free text over name and brand, optionally filtered
// by category. Verified foods sort before unverified ones, then by name.
func (s *FoodService) Search(ctx context.Context, params FoodSearchParams) ([]models.Food, *Pagination, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.Food{})
	if q := strings.TrimSpace(params.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern)
	}
	if params.Category != "" && params.Category != "all" {
		query = query.Where("category = ?", params.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var foods []models.Food
	err := query.
		Order("is_verified DESC, name ASC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&foods).Error
	if err != nil {
		return nil, nil, err
	}

	pagination := &Pagination{
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Pages: int(math.Ceil(float64(total) / float64(params.Limit))),
	}
	return foods, pagination, nil
}

// GetByID retrieves a single food.
func (s *FoodService) GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// Create adds an unverified food attributed to its creator.
func (s *FoodService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateFoodRequest) (*models.Food, error) {
	category := models.FoodCategory(req.Category)
	if category == "" {
		category = models.CategoryOther
	}

	food := models.Food{
		Name:               strings.TrimSpace(req.Name),
		Brand:              strings.TrimSpace(req.Brand),
		CaloriesPerServing: *req.CaloriesPerServing,
		ServingSize:        strings.TrimSpace(req.ServingSize),
		ServingUnit:        strings.TrimSpace(req.ServingUnit),
		Barcode:            strings.TrimSpace(req.Barcode),
		Category:           category,
		IsVerified:         false,
		CreatedBy:          &userID,
		Nutrients: models.Nutrients{
			Protein:       req.Protein,
			Carbohydrates: req.Carbohydrates,
			Fat:           req.Fat,
			Fiber:         req.Fiber,
			Sugar:         req.Sugar,
			Sodium:        req.Sodium,
		},
	}

	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// CategoryOption is a category with its display label.
type CategoryOption struct {
	Value models.FoodCategory `json:"value"`
	Label string              `json:"label"`
}

var categoryLabels = map[models.FoodCategory]string{
	models.CategoryFruits:     "Fruits",
	models.CategoryVegetables: "Vegetables",
	models.CategoryGrains:     "Grains",
	models.CategoryProtein:    "Protein",
	models.CategoryDairy:      "Dairy",
	models.CategoryFatsOils:   "Fats & Oils",
	models.CategoryBeverages:  "Beverages",
	models.CategorySnacks:     "Snacks",
	models.CategoryDesserts:   "Desserts",
	models.CategoryFastFood:   "Fast Food",
	models.CategoryOther:      "Other",
}

// Categories returns the fixed category list in display order.
func (s *FoodService) Categories() []CategoryOption {
	options := make([]CategoryOption, 0, len(models.FoodCategories))
	for _, c := range models.FoodCategories {
		options = append(options, CategoryOption{Value: c, Label: categoryLabels[c]})
	}
	return options
}
