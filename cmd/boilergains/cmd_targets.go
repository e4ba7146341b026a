package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/models"
	"github.com/catloaf567/boilergains/services"
)

func newTargetsCommand() *cobra.Command {
	var profile models.UserProfile
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Compute daily and per-meal macro targets from body metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargets(cmd, profile)
		},
	}
	cmd.Flags().Float64Var(&profile.Age, "age", 0, "age in years")
	cmd.Flags().Float64Var(&profile.HeightCm, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&profile.WeightKg, "weight", 0, "weight in kg")
	cmd.Flags().StringVar(&profile.Gender, "gender", "", "male or female (blank uses a midpoint formula)")
	cmd.Flags().StringVar(&profile.ActivityLevel, "activity", "sedentary", "sedentary, light, moderate, active, or very_active")
	return cmd
}

func runTargets(cmd *cobra.Command, profile models.UserProfile) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	plan, err := services.NewRecommendService(cfg.Recommend).Plan(profile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "BMR: %.0f kcal (activity x%.3g)\n", plan.BMR, plan.ActivityMultiplier)
	fmt.Fprintf(out, "BMI: %.1f (%s)\n", plan.BMI, plan.BMICategory)
	fmt.Fprintln(out, "Daily targets:")
	fmt.Fprintf(out, "  Calories: %.0f\n", plan.DailyCalorieGoal)
	fmt.Fprintf(out, "  Protein: %.1fg\n", plan.DailyProteinGoal)
	fmt.Fprintf(out, "  Carbohydrates: %.1fg\n", plan.DailyCarbGoal)
	fmt.Fprintf(out, "  Fat: %.1fg\n", plan.DailyFatGoal)
	fmt.Fprintf(out, "  Fiber: %.1fg\n", plan.DailyFiberGoal)
	fmt.Fprintf(out, "Per meal (%d meals):\n", plan.MealsPerDay)
	fmt.Fprintf(out, "  Calories: %.0f\n", plan.CalorieGoal)
	fmt.Fprintf(out, "  Protein: %.1fg\n", plan.ProteinGoal)
	fmt.Fprintf(out, "  Carbohydrates: %.1fg\n", plan.CarbGoal)
	fmt.Fprintf(out, "  Fat: %.1fg\n", plan.FatGoal)
	fmt.Fprintf(out, "  Fiber: %.1fg\n", plan.FiberGoal)
	return nil
}
