package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/models"
)

func TestPlan_KnownProfile(t *testing.T) {
	svc := NewRecommendService(config.Default().Recommend)

	plan, err := svc.Plan(models.UserProfile{
		Age: 30, HeightCm: 180, WeightKg: 75,
		Gender: "male", ActivityLevel: "moderate",
	})
	require.NoError(t, err)

	// BMR = 10*75 + 6.25*180 - 5*30 + 5 = 1730; TDEE = 1730 * 1.55 = 2681.5
	require.InDelta(t, 1730, plan.BMR, 0.01)
	require.InDelta(t, 1.55, plan.ActivityMultiplier, 0.0001)
	require.InDelta(t, 2682, plan.DailyCalorieGoal, 0.01)
	require.InDelta(t, 120, plan.DailyProteinGoal, 0.01)
	require.InDelta(t, 74.5, plan.DailyFatGoal, 0.01)
	require.InDelta(t, 382.8, plan.DailyCarbGoal, 0.05)
	require.InDelta(t, 37.5, plan.DailyFiberGoal, 0.01)

	if plan.MealsPerDay != 3 {
		t.Errorf("expected 3 meals per day, got %d", plan.MealsPerDay)
	}
	require.InDelta(t, 894, plan.CalorieGoal, 0.01)
	require.InDelta(t, 40, plan.ProteinGoal, 0.01)

	require.InDelta(t, 23.1, plan.BMI, 0.01)
	if plan.BMICategory != "Normal weight" {
		t.Errorf("expected Normal weight, got %q", plan.BMICategory)
	}
}

func TestPlan_PerMealTimesMealsMatchesDaily(t *testing.T) {
	svc := NewRecommendService(config.Default().Recommend)

	profiles := []models.UserProfile{
		{Age: 30, HeightCm: 180, WeightKg: 75, Gender: "male", ActivityLevel: "moderate"},
		{Age: 25, HeightCm: 165, WeightKg: 60, Gender: "female", ActivityLevel: "lightly_active"},
		{Age: 40, HeightCm: 170, WeightKg: 80, Gender: "", ActivityLevel: "no idea"},
	}
	for _, p := range profiles {
		plan, err := svc.Plan(p)
		require.NoError(t, err)

		meals := float64(plan.MealsPerDay)
		require.InDelta(t, plan.DailyCalorieGoal, plan.CalorieGoal*meals, 2.0)
		require.InDelta(t, plan.DailyProteinGoal, plan.ProteinGoal*meals, 0.2)
		require.InDelta(t, plan.DailyCarbGoal, plan.CarbGoal*meals, 0.2)
		require.InDelta(t, plan.DailyFatGoal, plan.FatGoal*meals, 0.2)
		require.InDelta(t, plan.DailyFiberGoal, plan.FiberGoal*meals, 0.2)
	}
}

func TestPlan_UnknownActivityTreatedAsSedentary(t *testing.T) {
	svc := NewRecommendService(config.Default().Recommend)

	plan, err := svc.Plan(models.UserProfile{
		Age: 30, HeightCm: 180, WeightKg: 75,
		Gender: "male", ActivityLevel: "couch potato",
	})
	require.NoError(t, err)
	require.InDelta(t, 1.2, plan.ActivityMultiplier, 0.0001)
}

func TestPlan_RejectsNonPositiveAge(t *testing.T) {
	svc := NewRecommendService(config.Default().Recommend)

	_, err := svc.Plan(models.UserProfile{
		Age: 0, HeightCm: 180, WeightKg: 75, Gender: "male", ActivityLevel: "moderate",
	})
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "age" {
		t.Errorf("expected field age, got %s", vErr.Field)
	}
}

func TestNewRecommendService_FillsZeroConfig(t *testing.T) {
	svc := NewRecommendService(config.RecommendConfig{})

	plan, err := svc.Plan(models.UserProfile{
		Age: 30, HeightCm: 180, WeightKg: 75, Gender: "male", ActivityLevel: "moderate",
	})
	require.NoError(t, err)
	if plan.MealsPerDay != 3 {
		t.Errorf("expected default meals per day, got %d", plan.MealsPerDay)
	}
	require.InDelta(t, 120, plan.DailyProteinGoal, 0.01)
}
