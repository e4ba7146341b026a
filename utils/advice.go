package utils

import (
	"fmt"

	"github.com/catloaf567/boilergains/models"
)

// MealNotes screens a meal's totals against the AMDR macro ranges and fiber
// density, returning short advisory strings. Zero-calorie totals and macros
// that sum to nothing produce no notes.
func MealNotes(totals models.MacroSum) []string {
	var notes []string

	macroKcal := 4*totals.Carbs + 4*totals.Protein + 9*totals.Fat
	if macroKcal > 0 {
		carbPct := (4 * totals.Carbs) / macroKcal
		protPct := (4 * totals.Protein) / macroKcal
		fatPct := (9 * totals.Fat) / macroKcal

		if carbPct < 0.45 || carbPct > 0.65 {
			notes = append(notes, fmt.Sprintf("Carbohydrates are ~%.0f%% of macro calories (typical range 45-65%%).", carbPct*100))
		}
		if protPct < 0.10 || protPct > 0.35 {
			notes = append(notes, fmt.Sprintf("Protein is ~%.0f%% of macro calories (typical range 10-35%%).", protPct*100))
		}
		if fatPct < 0.20 || fatPct > 0.35 {
			notes = append(notes, fmt.Sprintf("Fat is ~%.0f%% of macro calories (typical range 20-35%%).", fatPct*100))
		}
	}

	// fiber density only means something for carb-heavy meals, and only
	// when the items carried a fiber value at all
	if totals.Calories > 0 && totals.Fiber > 0 && totals.Carbs >= 15 {
		fiberPer100 := totals.Fiber / totals.Calories * 100
		if fiberPer100 < 1.0 {
			notes = append(notes, "Low fiber for a carb-heavy meal; a fruit or vegetable side would help.")
		} else if fiberPer100 >= 2.5 {
			notes = append(notes, "Good fiber density.")
		}
	}

	return notes
}
