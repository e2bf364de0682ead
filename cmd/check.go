package cmd

import (
	"context"
	"fmt"
	"os"

	"pharmacist/core/loader"
	"pharmacist/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd verifies the database before a rebalancing run.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the game database is complete and internally consistent",
	Long: `Checks that the database files the rebalancing pass reads are present,
then loads the database and reports consumables without handbook entries,
dangling trader assort references and recipes pointing at unknown templates.
Exits non-zero when any finding is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCheck(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context) {
	cfg, logg, src := bootstrap()
	svc := integrity.NewService(src, logg)

	missing, err := svc.CheckFiles(ctx)
	if err != nil {
		logg.Fatal("Failed to check database files", zap.Error(err))
	}

	fmt.Println("\n--- Database Check ---")
	if len(missing) == 0 {
		fmt.Println("Files:    all present")
	} else {
		fmt.Printf("Files:    %d missing\n", len(missing))
		for _, name := range missing {
			fmt.Printf("  - %s\n", name)
		}
	}

	db, err := loader.Load(ctx, src, cfg.Data.Locale)
	if err != nil {
		logg.Fatal("Failed to load game database", zap.Error(err))
	}

	findings := svc.CheckDatabase(db)
	if len(findings) == 0 {
		fmt.Println("Database: consistent")
	} else {
		fmt.Printf("Database: %d findings\n", len(findings))
		for _, finding := range findings {
			fmt.Printf("  - %s\n", finding)
		}
	}
	fmt.Println("----------------------")

	if len(missing) > 0 || len(findings) > 0 {
		os.Exit(1)
	}
	logg.Info("Database check passed")
}
