package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catloaf567/boilergains/models"
)

func TestBMI(t *testing.T) {
	bmi, err := BMI(180, 75)
	require.NoError(t, err)
	require.InDelta(t, 23.15, bmi, 0.01)
}

func TestBMI_RejectsNonPositiveInputs(t *testing.T) {
	_, err := BMI(0, 75)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "height_cm" {
		t.Errorf("expected height_cm validation error, got %v", err)
	}

	_, err = BMI(180, -1)
	if !errors.As(err, &vErr) || vErr.Field != "weight_kg" {
		t.Errorf("expected weight_kg validation error, got %v", err)
	}
}

func TestBMICategory(t *testing.T) {
	cases := map[float64]string{
		17: "Underweight",
		22: "Normal weight",
		27: "Overweight",
		32: "Obesity class I",
		37: "Obesity class II",
		42: "Obesity class III",
	}
	for bmi, want := range cases {
		if got := BMICategory(bmi); got != want {
			t.Errorf("BMICategory(%v) = %q, want %q", bmi, got, want)
		}
	}
}
