package nutrition

import (
	"errors"
	"math"

	"github.com/nutrilog/backend/internal/models"
)

var (
	// ErrIncompleteProfile is returned when a required field (age, weight,
	// height, gender) is missing. Callers are expected to guard with
	// Complete() before estimating; the check here is the backstop that
	// keeps a half-filled profile from producing a nonsense goal.
	ErrIncompleteProfile = errors.New("profile is missing required fields for calorie estimation")

	// ErrProfileOutOfRange is returned when a required field is outside the
	// bounds the write boundary enforces. Values are never clamped.
	ErrProfileOutOfRange = errors.New("profile value out of range")
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtraActive:      1.9,
}

// defaultActivityMultiplier is used when the activity level is unset or
// unrecognized, matching the moderately_active default.
const defaultActivityMultiplier = 1.55

// goalAdjustment is the additive calorie adjustment per weight goal:
// a 500 kcal deficit approximates 1 lb/week of loss, and the inverse for gain.
var goalAdjustment = map[string]float64{
	models.GoalLoseWeight: -500,
	models.GoalGainWeight: +500,
}

// EstimateInput carries the profile fields the estimator reads. Pointer
// fields are required; ActivityLevel and Goal fall back to their defaults
// when empty or unrecognized.
type EstimateInput struct {
	Age           *int
	Gender        *string
	WeightKg      *float64
	HeightCm      *float64
	ActivityLevel string
	Goal          string
}

// Complete reports whether all four required fields are present.
func (in EstimateInput) Complete() bool {
	return in.Age != nil && in.Gender != nil && in.WeightKg != nil && in.HeightCm != nil
}

// FromProfile builds an EstimateInput from a stored profile.
func FromProfile(p *models.UserProfile) EstimateInput {
	return EstimateInput{
		Age:           p.Age,
		Gender:        p.Gender,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}
}

// EstimateDailyCalories computes a daily calorie target from the profile
// using the Mifflin-St Jeor equation, an activity multiplier, and an
// additive goal adjustment. The result is rounded half-up to an integer.
//
// The male branch adds 5 to the base rate; every other gender value,
// including unrecognized ones, takes the -161 branch.
func EstimateDailyCalories(in EstimateInput) (int, error) {
	if !in.Complete() {
		return 0, ErrIncompleteProfile
	}
	age, weight, height := *in.Age, *in.WeightKg, *in.HeightCm
	if age < 13 || age > 120 {
		return 0, ErrProfileOutOfRange
	}
	if weight < 20 || weight > 500 {
		return 0, ErrProfileOutOfRange
	}
	if height < 100 || height > 250 {
		return 0, ErrProfileOutOfRange
	}

	bmr := 10*weight + 6.25*height - 5*float64(age)
	if *in.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}

	calories := bmr*multiplier + goalAdjustment[in.Goal]
	return int(math.Round(calories)), nil
}

// GoalSource tags how a daily calorie goal was decided.
type GoalSource string

const (
	// GoalSourceExplicit means the client supplied the goal directly.
	GoalSourceExplicit GoalSource = "explicit"
	// GoalSourceEstimated means the goal was computed from the profile.
	GoalSourceEstimated GoalSource = "estimated"
	// GoalSourceKept means neither applied and the current goal stands.
	GoalSourceKept GoalSource = "kept"
)

// GoalDecision is the outcome of ResolveDailyGoal.
type GoalDecision struct {
	Source   GoalSource
	Calories int
}

// ResolveDailyGoal decides the daily calorie goal after a profile update.
// An explicit client value always wins and is never overwritten by the
// estimator. Absent an explicit value, the goal is estimated only when the
// profile has all required fields; otherwise the current goal is kept.
func ResolveDailyGoal(explicit *int, current int, in EstimateInput) (GoalDecision, error) {
	if explicit != nil {
		return GoalDecision{Source: GoalSourceExplicit, Calories: *explicit}, nil
	}
	if in.Complete() {
		estimated, err := EstimateDailyCalories(in)
		if err != nil {
			return GoalDecision{}, err
		}
		return GoalDecision{Source: GoalSourceEstimated, Calories: estimated}, nil
	}
	return GoalDecision{Source: GoalSourceKept, Calories: current}, nil
}
