package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/models"
	"github.com/catloaf567/boilergains/utils"
)

// SuggestService searches an eligible item pool for the combination of
// items and integer servings that best meets per-meal macro targets.
//
// Strategy:
//   - rank the pool by protein density and keep the TopK shortlist
//   - enumerate combinations of 1..MaxItems items with 1..MaxServings
//     servings each (very high protein items stay at one serving)
//   - accept candidates inside the tolerance band, widening the band
//     stepwise only when a tighter one produced nothing
//   - rank accepted candidates by weighted deviation from the goals,
//     nudged by the pairing table
type SuggestService struct {
	cfg      config.SearchConfig
	pairings models.PairingTable
}

// NewSuggestService fills unset knobs from the built-in defaults, so a zero
// SearchConfig behaves sensibly.
func NewSuggestService(cfg config.SearchConfig, pairings models.PairingTable) *SuggestService {
	def := config.Default().Search
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = def.MaxItems
	}
	if cfg.MaxServings <= 0 {
		cfg.MaxServings = def.MaxServings
	}
	if cfg.HighProteinCapG <= 0 {
		cfg.HighProteinCapG = def.HighProteinCapG
	}
	if cfg.TopK <= 0 {
		cfg.TopK = def.TopK
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.RelaxSteps <= 0 {
		cfg.RelaxSteps = def.RelaxSteps
	}
	if cfg.MaxAlternatives <= 0 {
		cfg.MaxAlternatives = def.MaxAlternatives
	}
	if cfg.Weights == (config.MacroWeights{}) {
		cfg.Weights = def.Weights
	}
	if cfg.PairingBonus <= 0 {
		cfg.PairingBonus = def.PairingBonus
	}
	if cfg.UnknownPenalty <= 0 {
		cfg.UnknownPenalty = def.UnknownPenalty
	}
	if pairings == nil {
		pairings = DefaultPairings()
	}
	return &SuggestService{cfg: cfg, pairings: pairings}
}

// Suggest searches the pool for the best meal. It returns
// models.ErrNoMatch when nothing lands inside even the widest band.
func (s *SuggestService) Suggest(pool []models.FoodItem, target models.MacroTarget) (*models.MealSuggestion, error) {
	return s.search(pool, target, s.cfg.TopK)
}

// SuggestFrom restricts the pool to the named shortlist before searching.
// Shortlisted searches skip the density prune; the caller already chose.
func (s *SuggestService) SuggestFrom(pool []models.FoodItem, shortlist []string, target models.MacroTarget) (*models.MealSuggestion, error) {
	wanted := make(map[string]bool, len(shortlist))
	for _, n := range shortlist {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			wanted[n] = true
		}
	}
	sub := make([]models.FoodItem, 0, len(wanted))
	for _, item := range pool {
		if wanted[strings.ToLower(item.Name)] {
			sub = append(sub, item)
		}
	}
	return s.search(sub, target, 0)
}

func (s *SuggestService) search(pool []models.FoodItem, target models.MacroTarget, topK int) (*models.MealSuggestion, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, models.ErrNoMatch
	}

	ranked := rankByProteinDensity(pool)
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}

	for step := 1; step <= s.cfg.RelaxSteps; step++ {
		tol := s.cfg.Tolerance * float64(step)
		solutions := s.enumerate(ranked, target, tol)
		if len(solutions) == 0 {
			continue
		}
		sortCandidates(solutions)
		return s.buildSuggestion(solutions, target, tol), nil
	}
	return nil, models.ErrNoMatch
}

// enumerate walks every combination of 1..MaxItems shortlist items and
// every serving vector, returning the candidates inside the band.
func (s *SuggestService) enumerate(pool []models.FoodItem, target models.MacroTarget, tol float64) []scoredCandidate {
	maxItems := s.cfg.MaxItems
	if maxItems > len(pool) {
		maxItems = len(pool)
	}

	var out []scoredCandidate
	combo := make([]int, 0, maxItems)
	var walk func(start int)
	walk = func(start int) {
		if len(combo) > 0 {
			s.evalCombo(pool, combo, target, tol, &out)
		}
		if len(combo) == maxItems {
			return
		}
		for i := start; i < len(pool); i++ {
			combo = append(combo, i)
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)
	return out
}

// evalCombo spins the serving odometer over one item combination.
func (s *SuggestService) evalCombo(pool []models.FoodItem, combo []int, target models.MacroTarget, tol float64, out *[]scoredCandidate) {
	limits := make([]int, len(combo))
	servings := make([]int, len(combo))
	for i, idx := range combo {
		limits[i] = s.maxServingsFor(pool[idx])
		servings[i] = 1
	}

	for {
		var total models.MacroSum
		for i, idx := range combo {
			total.Add(pool[idx], servings[i])
		}
		if withinBands(total, target, tol) {
			items := make([]models.SuggestedItem, len(combo))
			names := make([]string, len(combo))
			for i, idx := range combo {
				items[i] = models.SuggestedItem{Food: pool[idx], Servings: servings[i]}
				names[i] = strings.ToLower(pool[idx].Name)
			}
			sort.Strings(names)
			*out = append(*out, scoredCandidate{
				MealCandidate: models.MealCandidate{
					Items:  items,
					Totals: total,
					Score:  s.score(items, total, target),
				},
				key: strings.Join(names, "|"),
			})
		}

		k := 0
		for k < len(servings) {
			servings[k]++
			if servings[k] <= limits[k] {
				break
			}
			servings[k] = 1
			k++
		}
		if k == len(servings) {
			return
		}
	}
}

// withinBands gates a candidate on the goal bands. Calories are two-sided;
// protein only rejects shortfall, overshooting protein is fine. Zero goals
// are unconstrained, so a target with no goals at all matches anything.
func withinBands(total models.MacroSum, t models.MacroTarget, tol float64) bool {
	if !t.Active() {
		return true
	}
	if t.Calories > 0 {
		if total.Calories < t.Calories*(1-tol) || total.Calories > t.Calories*(1+tol) {
			return false
		}
	}
	if t.Protein > 0 && total.Protein < t.Protein*(1-tol) {
		return false
	}
	return true
}

// score is the ranking key, lower is better: weighted relative deviation
// per active goal, a penalty per missing macro value, minus a small nudge
// per listed pairing. The nudge tie-breaks, it never outweighs the bands.
func (s *SuggestService) score(items []models.SuggestedItem, total models.MacroSum, t models.MacroTarget) float64 {
	w := s.cfg.Weights
	score := weighted(w.Calories, total.Calories, t.Calories) +
		weighted(w.Protein, total.Protein, t.Protein) +
		weighted(w.Carbs, total.Carbs, t.Carbs) +
		weighted(w.Fat, total.Fat, t.Fat) +
		weighted(w.Fiber, total.Fiber, t.Fiber)
	score += s.unknownPenalty(items, t)
	score -= s.pairingBonus(items)
	return score
}

func weighted(w, total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return w * math.Abs(total-goal) / goal
}

func (s *SuggestService) unknownPenalty(items []models.SuggestedItem, t models.MacroTarget) float64 {
	if s.cfg.UnknownPenalty <= 0 {
		return 0
	}
	missing := 0
	for _, it := range items {
		f := it.Food
		if t.Calories > 0 && f.Calories == nil {
			missing++
		}
		if t.Protein > 0 && f.Protein == nil {
			missing++
		}
		if t.Carbs > 0 && f.Carbs == nil {
			missing++
		}
		if t.Fat > 0 && f.Fat == nil {
			missing++
		}
		if t.Fiber > 0 && f.Fiber == nil {
			missing++
		}
	}
	return float64(missing) * s.cfg.UnknownPenalty
}

func (s *SuggestService) pairingBonus(items []models.SuggestedItem) float64 {
	if s.cfg.PairingBonus <= 0 || len(items) < 2 {
		return 0
	}
	bonus := 0.0
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if s.pairings.Paired(items[i].Food.Name, items[j].Food.Name) {
				bonus += s.cfg.PairingBonus
			}
		}
	}
	return bonus
}

func (s *SuggestService) maxServingsFor(f models.FoodItem) int {
	if f.Protein != nil && *f.Protein > s.cfg.HighProteinCapG {
		return 1
	}
	return s.cfg.MaxServings
}

func (s *SuggestService) buildSuggestion(solutions []scoredCandidate, target models.MacroTarget, tol float64) *models.MealSuggestion {
	best := solutions[0]
	out := &models.MealSuggestion{
		MealCandidate: best.MealCandidate,
		Tolerance:     tol,
		Text:          formatSuggestion(best.Items, best.Totals, target, tol),
		Notes:         utils.MealNotes(best.Totals),
	}
	for _, alt := range solutions[1:] {
		if len(out.Alternatives) >= s.cfg.MaxAlternatives {
			break
		}
		out.Alternatives = append(out.Alternatives, alt.MealCandidate)
	}
	return out
}

// formatSuggestion renders the meal as text, one line per item plus a
// totals line against the goals.
func formatSuggestion(items []models.SuggestedItem, total models.MacroSum, target models.MacroTarget, tol float64) string {
	var b strings.Builder
	for _, it := range items {
		var m models.MacroSum
		m.Add(it.Food, it.Servings)
		serving := it.Food.Serving
		if serving == "" {
			serving = "1 serving"
		}
		fmt.Fprintf(&b, "%d x %s (%s) — %.0f kcal, %.1f g protein, %.1f g carbs, %.1f g fat, %.1f g fiber\n",
			it.Servings, it.Food.Name, serving, m.Calories, m.Protein, m.Carbs, m.Fat, m.Fiber)
	}
	fmt.Fprintf(&b, "Total: %.0f kcal, %.1f g protein, %.1f g carbs, %.1f g fat, %.1f g fiber (goal %.0f kcal, %.1f g protein; tol %.0f%%)",
		total.Calories, total.Protein, total.Carbs, total.Fat, total.Fiber,
		target.Calories, target.Protein, tol*100)
	return b.String()
}

type scoredCandidate struct {
	models.MealCandidate
	key string // sorted lowercased item names, the final tie-break
}

func sortCandidates(solutions []scoredCandidate) {
	sort.SliceStable(solutions, func(i, j int) bool {
		a, b := solutions[i], solutions[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if len(a.Items) != len(b.Items) {
			return len(a.Items) < len(b.Items)
		}
		return a.key < b.key
	})
}

// rankByProteinDensity orders a copy of the pool by protein per calorie,
// ties alphabetical, so the shortlist cut is deterministic.
func rankByProteinDensity(pool []models.FoodItem) []models.FoodItem {
	ranked := make([]models.FoodItem, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].ProteinDensity(), ranked[j].ProteinDensity()
		if di != dj {
			return di > dj
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
