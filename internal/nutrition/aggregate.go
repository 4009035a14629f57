// Package nutrition holds the pure domain logic of the tracker: daily
// calorie aggregation and calorie-goal estimation. Nothing in here touches
// the database or the clock; callers shape persisted rows into inputs and
// persist whatever comes back.
package nutrition

import (
	"errors"
	"fmt"

	"github.com/nutrilog/backend/internal/models"
)

var (
	// ErrUnknownMealType is returned when an entry carries a meal type
	// outside the four fixed buckets. Coercing such an entry into a default
	// bucket would corrupt the partition invariant, so it is rejected.
	ErrUnknownMealType = errors.New("unknown meal type")

	// ErrNegativeCalories is returned for entries that slipped past the
	// write boundary with a negative calorie total.
	ErrNegativeCalories = errors.New("negative calorie total")
)

// MealEntry is the slice of a food log the aggregator needs: which bucket it
// belongs to and how many calories it contributed.
type MealEntry struct {
	MealType models.MealType
	Calories int
}

// MealTotal is the per-bucket slice of a daily summary.
type MealTotal struct {
	Calories int `json:"calories"`
	Items    int `json:"items"`
}

// Breakdown holds one MealTotal per meal type.
type Breakdown struct {
	Breakfast MealTotal `json:"breakfast"`
	Lunch     MealTotal `json:"lunch"`
	Dinner    MealTotal `json:"dinner"`
	Snack     MealTotal `json:"snack"`
}

// DailySummary is the aggregated per-day calorie report. RemainingCalories
// is goal minus total and may be negative; signalling "over goal" is the
// consumer's job, not the aggregator's.
type DailySummary struct {
	TotalCalories     int       `json:"total_calories"`
	Breakdown         Breakdown `json:"breakdown"`
	RemainingCalories int       `json:"remaining_calories"`
}

// Aggregate folds one user-day's entries into a DailySummary against the
// given goal. It is a single pass; order of entries never affects the sums.
// An empty slice yields the all-zero summary with the full goal remaining.
func Aggregate(entries []MealEntry, goal int) (*DailySummary, error) {
	summary := &DailySummary{}
	for _, e := range entries {
		if e.Calories < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeCalories, e.Calories)
		}
		bucket, err := summary.Breakdown.bucket(e.MealType)
		if err != nil {
			return nil, err
		}
		summary.TotalCalories += e.Calories
		bucket.Calories += e.Calories
		bucket.Items++
	}
	summary.RemainingCalories = goal - summary.TotalCalories
	return summary, nil
}

func (b *Breakdown) bucket(m models.MealType) (*MealTotal, error) {
	switch m {
	case models.MealBreakfast:
		return &b.Breakfast, nil
	case models.MealLunch:
		return &b.Lunch, nil
	case models.MealDinner:
		return &b.Dinner, nil
	case models.MealSnack:
		return &b.Snack, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMealType, m)
	}
}
