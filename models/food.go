package models

// A single row of a dining-court nutrition table, normalized by the catalog
// loader. Macro pointers are nil when the source cell was blank; unknown is
// not the same as zero.
type FoodItem struct {
	Name       string   `json:"name"`
	Calories   *float64 `json:"calories,omitempty"`
	Protein    *float64 `json:"protein_g,omitempty"`
	Carbs      *float64 `json:"carbs_g,omitempty"`
	Fat        *float64 `json:"fat_g,omitempty"`
	Fiber      *float64 `json:"fiber_g,omitempty"`
	Serving    string   `json:"serving,omitempty"`
	Vegan      bool     `json:"vegan"`
	Allergens  string   `json:"allergens,omitempty"`
	DiningHall string   `json:"dining_hall,omitempty"`
}

// MacroSum is an element-wise macro accumulation. Unknown values count as
// zero here; the search engine penalizes missing values separately.
type MacroSum struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
	Fiber    float64 `json:"fiber_g"`
}

// Add accumulates one item at the given serving count.
func (m *MacroSum) Add(f FoodItem, servings int) {
	n := float64(servings)
	m.Calories += n * deref(f.Calories)
	m.Protein += n * deref(f.Protein)
	m.Carbs += n * deref(f.Carbs)
	m.Fat += n * deref(f.Fat)
	m.Fiber += n * deref(f.Fiber)
}

// ProteinDensity is grams of protein per calorie, the ranking key for the
// search shortlist. Items without a usable calorie value rank by raw protein
// so a missing cell does not bury an otherwise strong item.
func (f FoodItem) ProteinDensity() float64 {
	p := deref(f.Protein)
	kcal := deref(f.Calories)
	if kcal <= 0 {
		return p
	}
	return p / kcal
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
