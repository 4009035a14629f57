package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted on a profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Activity levels, in increasing order of energy expenditure.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtraActive      = "extra_active"
)

// Weight goals.
const (
	GoalLoseWeight     = "lose_weight"
	GoalMaintainWeight = "maintain_weight"
	GoalGainWeight     = "gain_weight"
)

// DefaultDailyCalorieGoal is applied to new profiles until the user sets an
// explicit goal or supplies enough data for an estimate.
const DefaultDailyCalorieGoal = 2000

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"size:50;not null" json:"first_name"`
	LastName     string         `gorm:"size:50;not null" json:"last_name"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the nutrition profile used for calorie-goal estimation.
// Measurements are optional; activity level, goal and daily calorie goal
// carry defaults so the dashboard always has something to render against.
type UserProfile struct {
	ID                uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age               *int           `json:"age,omitempty"`
	Gender            *string        `gorm:"size:10" json:"gender,omitempty"`
	WeightKg          *float64       `json:"weight,omitempty"`
	HeightCm          *float64       `json:"height,omitempty"`
	ActivityLevel     string         `gorm:"size:30;not null;default:'moderately_active'" json:"activity_level"`
	Goal              string         `gorm:"size:20;not null;default:'maintain_weight'" json:"goal"`
	DailyCalorieGoal  int            `gorm:"not null;default:2000" json:"daily_calorie_goal"`
	ProfilePictureURL string         `gorm:"size:255" json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
