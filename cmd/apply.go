package cmd

import (
	"context"
	"fmt"

	"pharmacist/core/loader"
	"pharmacist/core/logger"
	"pharmacist/feature/pharmacist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var applyWrite bool

// applyCmd runs the rebalancing pass against the configured database.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run the rebalancing pass against the game database",
	Long: `Loads the game database, rescales consumable usage counts per the
tuning file, synchronizes handbook prices and barter/recipe requirement
counts, and prints a summary. A dry run by default; pass --write to save the
mutated database back to its source.`,
	Run: func(cmd *cobra.Command, args []string) {
		runApply(cmd.Context())
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applyWrite, "write", false, "save the mutated database back to its source")
	RootCmd.AddCommand(applyCmd)
}

func runApply(ctx context.Context) {
	cfg, logg, src := bootstrap()
	logg = logger.WithRunID(logg)

	tuning, err := pharmacist.LoadTuning(cfg.Tuning)
	if err != nil {
		logg.Fatal("Failed to load tuning", zap.Error(err))
	}

	logg.Info("Loading game database...")
	db, err := loader.Load(ctx, src, cfg.Data.Locale)
	if err != nil {
		logg.Fatal("Failed to load game database", zap.Error(err))
	}
	logg.Info("Game database loaded",
		zap.Int("items", len(db.Items)),
		zap.Int("traders", len(db.Traders)))

	svc := pharmacist.NewService(db, tuning, logg)
	report := svc.Apply()

	// Pretty Console Output
	fmt.Println("\n--- Rebalancing Summary ---")
	fmt.Printf("Stims:          %d items x%d\n", report.ItemCounts[pharmacist.CategoryStim], report.Multipliers[pharmacist.CategoryStim])
	fmt.Printf("Medkits:        %d items x%d\n", report.ItemCounts[pharmacist.CategoryMedkit], report.Multipliers[pharmacist.CategoryMedkit])
	fmt.Printf("Medical:        %d items x%d\n", report.ItemCounts[pharmacist.CategoryMedical], report.Multipliers[pharmacist.CategoryMedical])
	fmt.Printf("Drugs:          %d items x%d\n", report.ItemCounts[pharmacist.CategoryDrug], report.Multipliers[pharmacist.CategoryDrug])
	fmt.Println("---------------------------")
	fmt.Printf("Barter updates: %d\n", report.RequirementUpdates)
	fmt.Printf("Recipe updates: %d\n", report.RecipeUpdates)
	if report.ScalingSkipped {
		fmt.Println("Note: requirement scaling did not run")
	}
	fmt.Println("---------------------------")

	if !applyWrite {
		logg.Info("Dry run complete; pass --write to save")
		return
	}

	logg.Info("Saving game database...")
	if err := loader.Save(ctx, src, db); err != nil {
		logg.Fatal("Failed to save game database", zap.Error(err))
	}
	logg.Info("Game database saved")
}
