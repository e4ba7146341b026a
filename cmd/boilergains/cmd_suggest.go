package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/logger"
	"github.com/catloaf567/boilergains/models"
	"github.com/catloaf567/boilergains/services"
)

func newSuggestCommand() *cobra.Command {
	var (
		dataset   string
		target    models.MacroTarget
		vegan     bool
		allergen  string
		exclude   []string
		shortlist []string
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a meal from a dining-court dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, dataset, target, vegan, allergen, exclude, shortlist)
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset alias or file path")
	cmd.Flags().Float64Var(&target.Calories, "calories", 0, "per-meal calorie goal (kcal)")
	cmd.Flags().Float64Var(&target.Protein, "protein", 0, "per-meal protein goal (g)")
	cmd.Flags().Float64Var(&target.Carbs, "carbs", 0, "per-meal carb goal (g)")
	cmd.Flags().Float64Var(&target.Fat, "fat", 0, "per-meal fat goal (g)")
	cmd.Flags().Float64Var(&target.Fiber, "fiber", 0, "per-meal fiber goal (g)")
	cmd.Flags().BoolVar(&vegan, "vegan", false, "vegan items only")
	cmd.Flags().StringVar(&allergen, "allergen", "", "allergen to avoid")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "item names to exclude")
	cmd.Flags().StringSliceVar(&shortlist, "shortlist", nil, "restrict the search to these item names")
	return cmd
}

func runSuggest(cmd *cobra.Command, dataset string, target models.MacroTarget, vegan bool, allergen string, exclude, shortlist []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	pairings, err := services.LoadPairings(cfg.Pairings)
	if err != nil {
		logger.Warn("pairing config unreadable, using built-in table",
			zap.String("path", cfg.Pairings), zap.Error(err))
	}

	catalog, err := services.NewCatalogService().Load(cfg.ResolveDataset(dataset))
	if err != nil {
		return err
	}
	pool := services.FilterPool(catalog, vegan, allergen, exclude)

	svc := services.NewSuggestService(cfg.Search, pairings)
	var meal *models.MealSuggestion
	if len(shortlist) > 0 {
		meal, err = svc.SuggestFrom(pool, shortlist, target)
	} else {
		meal, err = svc.Suggest(pool, target)
	}
	out := cmd.OutOrStdout()
	if errors.Is(err, models.ErrNoMatch) {
		fmt.Fprintln(out, "No matching meal found.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Suggested meal (best match):")
	fmt.Fprintln(out, meal.Text)
	for _, note := range meal.Notes {
		fmt.Fprintf(out, "Note: %s\n", note)
	}
	if len(meal.Alternatives) > 0 {
		fmt.Fprintln(out, "\nOther close options:")
		for i, alt := range meal.Alternatives {
			fmt.Fprintf(out, "\nOption %d:\n", i+1)
			for _, it := range alt.Items {
				fmt.Fprintf(out, "  %d x %s\n", it.Servings, it.Food.Name)
			}
			fmt.Fprintf(out, "  %.0f kcal, %.1f g protein\n", alt.Totals.Calories, alt.Totals.Protein)
		}
	}
	return nil
}
