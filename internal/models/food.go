package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodCategory is the closed set of categories surfaced to clients, shared by
// Food.Category and the search filter.
type FoodCategory string

const (
	CategoryFruits     FoodCategory = "fruits"
	CategoryVegetables FoodCategory = "vegetables"
	CategoryGrains     FoodCategory = "grains"
	CategoryProtein    FoodCategory = "protein"
	CategoryDairy      FoodCategory = "dairy"
	CategoryFatsOils   FoodCategory = "fats_oils"
	CategoryBeverages  FoodCategory = "beverages"
	CategorySnacks     FoodCategory = "snacks"
	CategoryDesserts   FoodCategory = "desserts"
	CategoryFastFood   FoodCategory = "fast_food"
	CategoryOther      FoodCategory = "other"
)

// FoodCategories lists every valid category in display order.
var FoodCategories = []FoodCategory{
	CategoryFruits,
	CategoryVegetables,
	CategoryGrains,
	CategoryProtein,
	CategoryDairy,
	CategoryFatsOils,
	CategoryBeverages,
	CategorySnacks,
	CategoryDesserts,
	CategoryFastFood,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c FoodCategory) Valid() bool {
	for _, v := range FoodCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Nutrients is the optional per-serving nutrient breakdown. Grams except
// sodium, which is milligrams.
type Nutrients struct {
	Protein       *float64 `json:"protein,omitempty"`
	Carbohydrates *float64 `json:"carbohydrates,omitempty"`
	Fat           *float64 `json:"fat,omitempty"`
	Fiber         *float64 `json:"fiber,omitempty"`
	Sugar         *float64 `json:"sugar,omitempty"`
	Sodium        *float64 `json:"sodium,omitempty"`
}

// Food is a food item. Verified entries come from seed data; anything created
// through the API is unverified and attributed to its creator. Foods are
// never updated or deleted once created.
type Food struct {
	ID                 uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Name               string         `gorm:"size:100;not null;index" json:"name"`
	Brand              string         `gorm:"size:50" json:"brand,omitempty"`
	CaloriesPerServing float64        `gorm:"not null" json:"calories_per_serving"`
	ServingSize        string         `gorm:"size:50;not null" json:"serving_size"`
	ServingUnit        string         `gorm:"size:50;not null" json:"serving_unit"`
	Nutrients          Nutrients      `gorm:"embedded;embeddedPrefix:nutrient_" json:"nutrients"`
	Barcode            string         `gorm:"size:50;index" json:"barcode,omitempty"`
	Category           FoodCategory   `gorm:"size:20;not null;default:'other'" json:"category"`
	IsVerified         bool           `gorm:"default:false" json:"is_verified"`
	CreatedBy          *uuid.UUID     `gorm:"type:varchar(36)" json:"created_by,omitempty"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Category == "" {
		f.Category = CategoryOther
	}
	return nil
}

func (Food) TableName() string {
	return "foods"
}
