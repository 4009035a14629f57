package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/nutrition"
	"github.com/nutrilog/backend/internal/types"
)

// ProfileService handles nutrition profile operations
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's nutrition profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a validated patch to a user's profile. The stored
// record is replaced by a freshly constructed value rather than mutated
// field by field, and the daily calorie goal is resolved through the
// explicit decision table: a client-supplied goal is taken as-is, an
// omitted one is estimated when the profile is complete, and kept otherwise.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, nutrition.GoalDecision, error) {
	var current models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&current).Error; err != nil {
		return nil, nutrition.GoalDecision{}, err
	}

	updated := applyProfilePatch(current, req)

	decision, err := nutrition.ResolveDailyGoal(
		req.DailyCalorieGoal,
		current.DailyCalorieGoal,
		nutrition.FromProfile(&updated),
	)
	if err != nil {
		return nil, nutrition.GoalDecision{}, err
	}
	updated.DailyCalorieGoal = decision.Calories

	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, nutrition.GoalDecision{}, err
	}
	return &updated, decision, nil
}

// SetProfilePicture stores the public URL of an uploaded profile picture.
func (s *ProfileService) SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error {
	return s.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("profile_picture_url", url).Error
}

// applyProfilePatch builds the next profile value from the current one plus
// the patch. The input is taken by value so the caller's copy stays intact
// until the new value is persisted.
func applyProfilePatch(current models.UserProfile, req *types.UpdateProfileRequest) models.UserProfile {
	next := current
	if req.Age != nil {
		next.Age = req.Age
	}
	if req.Gender != nil {
		next.Gender = req.Gender
	}
	if req.WeightKg != nil {
		next.WeightKg = req.WeightKg
	}
	if req.HeightCm != nil {
		next.HeightCm = req.HeightCm
	}
	if req.ActivityLevel != nil {
		next.ActivityLevel = *req.ActivityLevel
	}
	if req.Goal != nil {
		next.Goal = *req.Goal
	}
	return next
}
