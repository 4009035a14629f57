package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType buckets a food log into one of four daily eating occasions.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the valid meal types in the order summaries report them.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Valid reports whether m is one of the four meal types.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodLog records one consumption of a food. TotalCalories is stored as
// supplied at write time and is never re-derived from the referenced food,
// so later edits to the food leave past logs untouched.
type FoodLog struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;index:idx_food_logs_user_date" json:"user_id"`
	FoodID        uuid.UUID      `gorm:"type:varchar(36);not null" json:"food_id"`
	Date          time.Time      `gorm:"not null;index:idx_food_logs_user_date" json:"date"`
	MealType      MealType       `gorm:"size:20;not null" json:"meal_type"`
	Quantity      float64        `gorm:"not null" json:"quantity"`
	Unit          string         `gorm:"size:50;not null" json:"unit"`
	TotalCalories int            `gorm:"not null" json:"total_calories"`
	Notes         string         `gorm:"size:500" json:"notes,omitempty"`

	Food *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

func (l *FoodLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (FoodLog) TableName() string {
	return "food_logs"
}
