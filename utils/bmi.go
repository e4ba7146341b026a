package utils

import "github.com/catloaf567/boilergains/models"

// BMI expects height in centimeters and weight in kilograms.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 {
		return 0, &models.ValidationError{Field: "height_cm", Reason: "must be positive"}
	}
	if weightKg <= 0 {
		return 0, &models.ValidationError{Field: "weight_kg", Reason: "must be positive"}
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
