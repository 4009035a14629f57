package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/backend/internal/nutrition"
	"github.com/nutrilog/backend/internal/types"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// completeProfilePatch fills in everything the estimator needs.
func completeProfilePatch() *types.UpdateProfileRequest {
	return &types.UpdateProfileRequest{
		Age:           intPtr(30),
		Gender:        strPtr("male"),
		WeightKg:      floatPtr(70),
		HeightCm:      floatPtr(175),
		ActivityLevel: strPtr("sedentary"),
		Goal:          strPtr("maintain_weight"),
	}
}

func TestUpdateProfileEstimatesGoal(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, db, "alex@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	profile, decision, err := svc.UpdateProfile(ctx, user.ID, completeProfilePatch())
	require.NoError(t, err)

	assert.Equal(t, nutrition.GoalSourceEstimated, decision.Source)
	assert.Equal(t, 1979, profile.DailyCalorieGoal)
}

func TestUpdateProfileExplicitGoalWins(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, db, "alex@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	// Even with a complete profile, a client-supplied goal is never
	// overwritten by the estimate.
	req := completeProfilePatch()
	req.DailyCalorieGoal = intPtr(1800)

	profile, decision, err := svc.UpdateProfile(ctx, user.ID, req)
	require.NoError(t, err)

	assert.Equal(t, nutrition.GoalSourceExplicit, decision.Source)
	assert.Equal(t, 1800, profile.DailyCalorieGoal)
}

func TestUpdateProfileKeepsGoalWhenIncomplete(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, db, "alex@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	profile, decision, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Age: intPtr(30),
	})
	require.NoError(t, err)

	assert.Equal(t, nutrition.GoalSourceKept, decision.Source)
	assert.Equal(t, 2000, profile.DailyCalorieGoal)
}

func TestUpdateProfileLoseWeightAdjustment(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, db, "alex@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	req := completeProfilePatch()
	req.Goal = strPtr("lose_weight")

	profile, _, err := svc.UpdateProfile(ctx, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 1479, profile.DailyCalorieGoal)
}

func TestUpdateProfilePartialPatchPreservesFields(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, db, "alex@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	_, _, err := svc.UpdateProfile(ctx, user.ID, completeProfilePatch())
	require.NoError(t, err)

	// Patch only the weight; everything else stays, and the goal is
	// re-estimated from the merged profile.
	profile, decision, err := svc.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		WeightKg: floatPtr(80),
	})
	require.NoError(t, err)

	require.NotNil(t, profile.Age)
	assert.Equal(t, 30, *profile.Age)
	require.NotNil(t, profile.WeightKg)
	assert.Equal(t, 80.0, *profile.WeightKg)
	assert.Equal(t, "sedentary", profile.ActivityLevel)
	assert.Equal(t, nutrition.GoalSourceEstimated, decision.Source)
	// BMR 10*80 + 6.25*175 - 5*30 + 5 = 1748.75; *1.2 = 2098.5 -> 2099
	assert.Equal(t, 2099, profile.DailyCalorieGoal)
}

func TestSetProfilePicture(t *testing.T) {
	db := newTestDB(t)
	user := registerTestUser(t, db, "alex@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	require.NoError(t, svc.SetProfilePicture(ctx, user.ID, "https://images.test/pic.png"))

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://images.test/pic.png", profile.ProfilePictureURL)
}
