package utils

import (
	"math"
	"strings"

	"github.com/catloaf567/boilergains/models"
)

// Mifflin-St Jeor gender offsets. Unspecified gender uses the midpoint of
// the male and female constants.
const (
	maleOffset        = 5.0
	femaleOffset      = -161.0
	unspecifiedOffset = (maleOffset + femaleOffset) / 2
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Legacy level names still accepted from older clients.
var activityAliases = map[string]string{
	"lightly_active":    "light",
	"moderately_active": "moderate",
	"extremely_active":  "very_active",
	"extra_active":      "very_active",
}

// MacroRatios controls how daily calories split into macro targets.
type MacroRatios struct {
	ProteinPerKg     float64 // grams of protein per kg body weight
	FatCalorieShare  float64 // fraction of calories from fat
	FiberPer1000Kcal float64 // grams of fiber per 1000 kcal
}

// EnergyNeeds is the unrounded daily output of the calculator.
type EnergyNeeds struct {
	BMR        float64
	Multiplier float64
	Calories   float64
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	FiberG     float64
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. Gender values
// other than male/female get the midpoint offset.
func BMR(weightKg, heightCm, age float64, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	switch normalizeGender(gender) {
	case "male":
		return base + maleOffset
	case "female":
		return base + femaleOffset
	default:
		return base + unspecifiedOffset
	}
}

// ActivityMultiplier maps an activity level to its TDEE factor. Unknown or
// empty levels fall back to sedentary.
func ActivityMultiplier(level string) float64 {
	key := strings.ToLower(strings.TrimSpace(level))
	if canonical, ok := activityAliases[key]; ok {
		key = canonical
	}
	if m, ok := activityMultipliers[key]; ok {
		return m
	}
	return activityMultipliers["sedentary"]
}

// CalculateEnergyNeeds derives daily calories and macro grams from body
// metrics. Age, height, and weight must be positive.
func CalculateEnergyNeeds(age, heightCm, weightKg float64, gender, activity string, ratios MacroRatios) (*EnergyNeeds, error) {
	if age <= 0 {
		return nil, &models.ValidationError{Field: "age", Reason: "must be positive"}
	}
	if heightCm <= 0 {
		return nil, &models.ValidationError{Field: "height_cm", Reason: "must be positive"}
	}
	if weightKg <= 0 {
		return nil, &models.ValidationError{Field: "weight_kg", Reason: "must be positive"}
	}

	bmr := BMR(weightKg, heightCm, age, gender)
	mult := ActivityMultiplier(activity)
	calories := bmr * mult

	proteinG := weightKg * ratios.ProteinPerKg
	fatG := calories * ratios.FatCalorieShare / 9
	carbsKcal := calories - proteinG*4 - fatG*9
	if carbsKcal < 0 {
		carbsKcal = 0
	}

	return &EnergyNeeds{
		BMR:        bmr,
		Multiplier: mult,
		Calories:   calories,
		ProteinG:   proteinG,
		CarbsG:     carbsKcal / 4,
		FatG:       fatG,
		FiberG:     calories / 1000 * ratios.FiberPer1000Kcal,
	}, nil
}

// Round1 rounds to one decimal place, the display precision for gram
// values.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func normalizeGender(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "male", "m", "man":
		return "male"
	case "female", "f", "woman":
		return "female"
	default:
		return ""
	}
}
