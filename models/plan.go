package models

// UserProfile is the /recommend request body.
type UserProfile struct {
	Age           float64 `json:"age"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
}

// NutritionPlan carries per-meal goals alongside the daily totals they were
// divided from. Calories are rounded to whole numbers, gram values to one
// decimal.
type NutritionPlan struct {
	CalorieGoal float64 `json:"calorie_goal"`
	ProteinGoal float64 `json:"protein_goal"`
	CarbGoal    float64 `json:"carb_goal"`
	FatGoal     float64 `json:"fat_goal"`
	FiberGoal   float64 `json:"fiber_goal"`

	DailyCalorieGoal float64 `json:"daily_calorie_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbGoal    float64 `json:"daily_carb_goal"`
	DailyFatGoal     float64 `json:"daily_fat_goal"`
	DailyFiberGoal   float64 `json:"daily_fiber_goal"`

	MealsPerDay        int     `json:"meals_per_day"`
	BMR                float64 `json:"bmr"`
	ActivityMultiplier float64 `json:"activity_multiplier"`
	BMI                float64 `json:"bmi"`
	BMICategory        string  `json:"bmi_category"`
}
