package services

import (
	"encoding/json"
	"os"

	"github.com/catloaf567/boilergains/models"
)

// Built-in affinity map, used whenever no pairing file is configured or the
// configured one cannot be read.
var defaultPairings = map[string][]string{
	"hamburger": {"bun", "bread", "roll", "fries"},
	"burger":    {"bun", "bread", "roll", "fries"},
	"hot dog":   {"bun", "ketchup", "mustard"},
	"taco":      {"shell", "tortilla", "salsa"},
	"chicken":   {"rice", "salad", "wrap", "bread"},
	"steak":     {"potato", "rice", "salad"},
	"yogurt":    {"granola", "berries", "fruit"},
	"granola":   {"yogurt", "milk", "berries"},
	"oatmeal":   {"milk", "berries", "banana"},
	"pancake":   {"syrup", "butter"},
	"eggs":      {"toast", "bacon", "sausage"},
	"bacon":     {"eggs", "toast"},
	"salad":     {"dressing", "bread", "chicken", "tofu"},
	"rice":      {"chicken", "beans", "tofu"},
	"beans":     {"rice", "tortilla"},
	"pizza":     {"bread", "cheese"},
	"sushi":     {"soy", "wasabi", "ginger"},
	"bagel":     {"cream cheese", "lox", "butter"},
}

// DefaultPairings returns the built-in affinity table.
func DefaultPairings() models.PairingTable {
	return models.NewPairingTable(defaultPairings)
}

// LoadPairings reads a JSON object mapping item keys to partner lists. On
// any failure it returns the built-in table together with the error, so the
// caller can log the fallback and keep running.
func LoadPairings(path string) (models.PairingTable, error) {
	if path == "" {
		return DefaultPairings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPairings(), err
	}
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return DefaultPairings(), err
	}
	return models.NewPairingTable(raw), nil
}
