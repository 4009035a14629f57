package types

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the body for PUT /users/profile. Every field is
// optional; absent fields leave the stored value untouched. Bounds mirror
// what the profile schema enforces.
type UpdateProfileRequest struct {
	Age              *int     `json:"age" binding:"omitempty,min=13,max=120"`
	Gender           *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	WeightKg         *float64 `json:"weight" binding:"omitempty,gte=20,lte=500"`
	HeightCm         *float64 `json:"height" binding:"omitempty,gte=100,lte=250"`
	ActivityLevel    *string  `json:"activity_level" binding:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active"`
	Goal             *string  `json:"goal" binding:"omitempty,oneof=lose_weight maintain_weight gain_weight"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal" binding:"omitempty,min=800,max=5000"`
}

// CreateFoodRequest is the body for POST /foods.
type CreateFoodRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=100"`
	Brand              string   `json:"brand" binding:"omitempty,max=50"`
	CaloriesPerServing *float64 `json:"calories_per_serving" binding:"required,gte=0"`
	ServingSize        string   `json:"serving_size" binding:"required"`
	ServingUnit        string   `json:"serving_unit" binding:"required"`
	Barcode            string   `json:"barcode" binding:"omitempty,max=50"`
	Category           string   `json:"category" binding:"omitempty,oneof=fruits vegetables grains protein dairy fats_oils beverages snacks desserts fast_food other"`
	Protein            *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbohydrates      *float64 `json:"carbohydrates" binding:"omitempty,gte=0"`
	Fat                *float64 `json:"fat" binding:"omitempty,gte=0"`
	Fiber              *float64 `json:"fiber" binding:"omitempty,gte=0"`
	Sugar              *float64 `json:"sugar" binding:"omitempty,gte=0"`
	Sodium             *float64 `json:"sodium" binding:"omitempty,gte=0"`
}

// CreateFoodLogRequest is the body for POST /logs. TotalCalories is stored
// as supplied; the client computes it from the food's calories per serving
// times quantity, but manual overrides are accepted.
type CreateFoodLogRequest struct {
	FoodID        string  `json:"food_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required"`
	MealType      string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Quantity      float64 `json:"quantity" binding:"required,gte=0.1"`
	Unit          string  `json:"unit" binding:"required"`
	TotalCalories *int    `json:"total_calories" binding:"required,gte=0"`
	Notes         string  `json:"notes" binding:"omitempty,max=500"`
}

// UpdateFoodLogRequest is the body for PUT /logs/:id. The food reference and
// date are fixed at creation; everything else can change.
type UpdateFoodLogRequest struct {
	MealType      string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Quantity      float64 `json:"quantity" binding:"required,gte=0.1"`
	Unit          string  `json:"unit" binding:"required"`
	TotalCalories *int    `json:"total_calories" binding:"required,gte=0"`
	Notes         string  `json:"notes" binding:"omitempty,max=500"`
}
