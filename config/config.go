package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration. Load starts from Default()
// and overlays the YAML file, so absent keys keep their defaults.
type Config struct {
	Server    ServerConfig      `yaml:"server"`
	Datasets  map[string]string `yaml:"datasets"`
	Default   string            `yaml:"default_dataset"`
	Pairings  string            `yaml:"pairings"`
	Search    SearchConfig      `yaml:"search"`
	Recommend RecommendConfig   `yaml:"recommend"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	StaticDir   string   `yaml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins"` // empty allows all origins
}

// SearchConfig tunes the combination search. Weights apply per macro to the
// relative deviation from its goal.
type SearchConfig struct {
	MaxItems        int          `yaml:"max_items"`
	MaxServings     int          `yaml:"max_servings"`
	HighProteinCapG float64      `yaml:"high_protein_cap_g"`
	TopK            int          `yaml:"top_k"`
	Tolerance       float64      `yaml:"tolerance"`
	RelaxSteps      int          `yaml:"relax_steps"`
	MaxAlternatives int          `yaml:"max_alternatives"`
	Weights         MacroWeights `yaml:"weights"`
	PairingBonus    float64      `yaml:"pairing_bonus"`
	UnknownPenalty  float64      `yaml:"unknown_penalty"`
}

type MacroWeights struct {
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
	Fiber    float64 `yaml:"fiber"`
}

// RecommendConfig tunes how daily targets derive from body metrics.
type RecommendConfig struct {
	ProteinPerKg     float64 `yaml:"protein_per_kg"`
	FatCalorieShare  float64 `yaml:"fat_calorie_share"`
	FiberPer1000Kcal float64 `yaml:"fiber_per_1000_kcal"`
	MealsPerDay      int     `yaml:"meals_per_day"`
}

// Default returns the built-in configuration, usable with no config file at
// all.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Datasets: map[string]string{
			"windsor": "Windsor-20250922.xlsx",
		},
		Default:  "windsor",
		Pairings: "pairings.json",
		Search: SearchConfig{
			MaxItems:        3,
			MaxServings:     3,
			HighProteinCapG: 20,
			TopK:            30,
			Tolerance:       0.07,
			RelaxSteps:      3,
			MaxAlternatives: 5,
			Weights: MacroWeights{
				Calories: 1.0,
				Protein:  1.0,
				Carbs:    0.3,
				Fat:      0.3,
				Fiber:    0.2,
			},
			PairingBonus:   0.05,
			UnknownPenalty: 0.05,
		},
		Recommend: RecommendConfig{
			ProteinPerKg:     1.6,
			FatCalorieShare:  0.25,
			FiberPer1000Kcal: 14,
			MealsPerDay:      3,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path uses
// ./config.yaml when present, otherwise just the defaults. A .env file,
// when present, feeds the PORT override.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // optional; system env wins anyway

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	return cfg, nil
}

// ResolveDataset maps a dataset alias to its file path. Non-alias input is
// treated as a literal path; empty input falls back to the default dataset.
func (c *Config) ResolveDataset(nameOrPath string) string {
	if nameOrPath == "" {
		nameOrPath = c.Default
	}
	if p, ok := c.Datasets[nameOrPath]; ok {
		return p
	}
	return nameOrPath
}
