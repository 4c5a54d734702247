package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanjiru/huduma-guide/internal/config"
	"github.com/wanjiru/huduma-guide/internal/normalize"
	"github.com/wanjiru/huduma-guide/internal/observability"
)

var (
	resolveCounty      string
	resolveService     string
	resolveAge         string
	resolveResidency   string
	resolveApplication string
	resolveQuery       string
	resolveConfigPath  string
	resolveJSON        bool
	resolveVerbose     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a service request into a full profile",
	Long: `Resolve a service request into eligibility, office location, cost,
documents and process steps. Fields may be given as flags or inferred from
a free-text query; missing fields fall back to sensible defaults.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCounty, "county", "", "County of residence")
	resolveCmd.Flags().StringVar(&resolveService, "service", "", "Service id or common name (e.g. passport, dl, kra pin)")
	resolveCmd.Flags().StringVar(&resolveAge, "age", "", "Age bracket (under-18, 18-35, 36-60, over-60) or a point age")
	resolveCmd.Flags().StringVar(&resolveResidency, "residency", "", "Residency status (citizen, dual, resident, foreign)")
	resolveCmd.Flags().StringVar(&resolveApplication, "application-type", "", "Application type (new, renewal, replacement, correction)")
	resolveCmd.Flags().StringVarP(&resolveQuery, "query", "q", "", "Free-text question, used to infer missing fields")
	resolveCmd.Flags().StringVar(&resolveConfigPath, "config", "", "Path to JSON config file")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output the full profile as JSON")
	resolveCmd.Flags().BoolVar(&resolveVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	loose := &normalize.LooseRequest{
		County:          resolveCounty,
		Service:         resolveService,
		Age:             resolveAge,
		Residency:       resolveResidency,
		ApplicationType: resolveApplication,
		Query:           resolveQuery,
	}
	if loose.County == "" && loose.Service == "" && loose.Query == "" {
		return fmt.Errorf("provide at least one of --county, --service or --query")
	}

	cfg, err := loadMergedConfig(resolveConfigPath, config.Config{Verbose: resolveVerbose})
	if err != nil {
		return err
	}

	ctx := context.Background()
	engine, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result := engine.Resolve(ctx, loose, nil)

	if resolveJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(result.Profile)
	printer.PrintVerdict(&result.Profile.Eligibility)
	if cfg.Verbose {
		printer.PrintExplanation(&result.Profile.DecisionExplanation)
	}

	fmt.Println()
	fmt.Println(result.Profile.Guidance.Explanation)
	for _, tip := range result.Profile.Guidance.Tips {
		fmt.Printf("  Tip: %s\n", tip)
	}
	for _, warning := range result.Profile.Guidance.Warnings {
		fmt.Printf("  Warning: %s\n", warning)
	}

	return nil
}
