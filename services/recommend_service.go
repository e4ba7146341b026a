package services

import (
	"math"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/models"
	"github.com/catloaf567/boilergains/utils"
)

// RecommendService turns body metrics into daily and per-meal macro goals.
type RecommendService struct {
	cfg config.RecommendConfig
}

// NewRecommendService fills unset ratios from the built-in defaults.
func NewRecommendService(cfg config.RecommendConfig) *RecommendService {
	def := config.Default().Recommend
	if cfg.ProteinPerKg <= 0 {
		cfg.ProteinPerKg = def.ProteinPerKg
	}
	if cfg.FatCalorieShare <= 0 {
		cfg.FatCalorieShare = def.FatCalorieShare
	}
	if cfg.FiberPer1000Kcal <= 0 {
		cfg.FiberPer1000Kcal = def.FiberPer1000Kcal
	}
	if cfg.MealsPerDay <= 0 {
		cfg.MealsPerDay = def.MealsPerDay
	}
	return &RecommendService{cfg: cfg}
}

// Plan computes the nutrition plan for a profile. Per-meal goals are the
// daily goals divided across meals; calories round to whole numbers, grams
// to one decimal.
func (s *RecommendService) Plan(p models.UserProfile) (*models.NutritionPlan, error) {
	needs, err := utils.CalculateEnergyNeeds(p.Age, p.HeightCm, p.WeightKg, p.Gender, p.ActivityLevel, utils.MacroRatios{
		ProteinPerKg:     s.cfg.ProteinPerKg,
		FatCalorieShare:  s.cfg.FatCalorieShare,
		FiberPer1000Kcal: s.cfg.FiberPer1000Kcal,
	})
	if err != nil {
		return nil, err
	}

	bmi, err := utils.BMI(p.HeightCm, p.WeightKg)
	if err != nil {
		return nil, err
	}

	meals := float64(s.cfg.MealsPerDay)
	return &models.NutritionPlan{
		CalorieGoal: math.Round(needs.Calories / meals),
		ProteinGoal: utils.Round1(needs.ProteinG / meals),
		CarbGoal:    utils.Round1(needs.CarbsG / meals),
		FatGoal:     utils.Round1(needs.FatG / meals),
		FiberGoal:   utils.Round1(needs.FiberG / meals),

		DailyCalorieGoal: math.Round(needs.Calories),
		DailyProteinGoal: utils.Round1(needs.ProteinG),
		DailyCarbGoal:    utils.Round1(needs.CarbsG),
		DailyFatGoal:     utils.Round1(needs.FatG),
		DailyFiberGoal:   utils.Round1(needs.FiberG),

		MealsPerDay:        s.cfg.MealsPerDay,
		BMR:                math.Round(needs.BMR),
		ActivityMultiplier: needs.Multiplier,
		BMI:                utils.Round1(bmi),
		BMICategory:        utils.BMICategory(bmi),
	}, nil
}
