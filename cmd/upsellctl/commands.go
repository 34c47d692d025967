package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"upsell/config"
	"upsell/database"
	rulesRepo "upsell/database/repository/rules"
	"upsell/services/compatibility"
	"upsell/services/upsell"
	"upsell/utils"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report conflicts, duplicates, pricing and recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(snapshotFile)
		if err != nil {
			return err
		}
		report := upsell.OptimizeSelections(snap.Rooms, snap.Extras, snap.pricingContext())
		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, report)
		}
		printConflicts(w, report.Conflicts)
		printDuplicates(w, report.Duplicates)
		printPricing(w, report.Pricing)
		printRecommendations(w, report.Recommendations)
		return nil
	},
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(snapshotFile)
		if err != nil {
			return err
		}
		result := upsell.NewOptimizer().Pricing.CalculateOptimizedPricing(snap.Rooms, snap.Extras, snap.pricingContext())
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}
		printPricing(cmd.OutOrStdout(), result)
		return nil
	},
}

var (
	checkOption   string
	checkCategory string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a customization option can be selected",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(snapshotFile)
		if err != nil {
			return err
		}
		engine, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		if err := engine.Catalog().ValidateSelection(snap.Selected); err != nil {
			return err
		}
		conflict := engine.CheckForConflicts(checkOption, checkCategory, snap.Selected, engine.Catalog())
		w := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(w, map[string]interface{}{"conflict": conflict})
		}
		if conflict == nil {
			successColor.Fprintf(w, "✓ %s can be selected\n", checkOption)
			return nil
		}
		errorColor.Fprintf(w, "✗ %s conflicts with %s\n", conflict.ConflictingOption.Label, conflict.CurrentOption.Label)
		printLabelValue(w, "type", string(conflict.Type))
		printLabelValue(w, "reason", conflict.Reason)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the built-in catalog and rules in MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		repo, closeRepo, err := openRulesRepo()
		if err != nil {
			return err
		}
		defer closeRepo(ctx)

		if err := upsell.SeedCompatibilityData(ctx, repo); err != nil {
			return fmt.Errorf("failed to seed compatibility data: %w", err)
		}
		successColor.Fprintf(cmd.OutOrStdout(), "✓ seeded %s\n", config.AppConfig.DatabaseName)
		return nil
	},
}

// openRulesRepo connects to the configured MongoDB rules store.
var openRulesRepo = func() (rulesRepo.RulesRepository, func(context.Context) error, error) {
	if err := database.InitDB(); err != nil {
		return nil, nil, err
	}
	return rulesRepo.NewMongoRulesRepo(database.Database()), database.Close, nil
}

// loadEngine builds the compatibility engine from the configured rules source.
func loadEngine(ctx context.Context) (*compatibility.Engine, error) {
	if !config.UsesMongoRules() {
		return compatibility.NewDefaultEngine(), nil
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	repo, closeRepo, err := openRulesRepo()
	if err != nil {
		return nil, err
	}
	defer closeRepo(ctx)

	return upsell.LoadCompatibilityEngine(ctx, repo, utils.GetLogger())
}

func init() {
	checkCmd.Flags().StringVar(&checkOption, "option", "", "option id to check")
	checkCmd.Flags().StringVar(&checkCategory, "category", "", "category key of the option")
	_ = checkCmd.MarkFlagRequired("option")
	_ = checkCmd.MarkFlagRequired("category")
}
