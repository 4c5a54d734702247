// Package main provides the entry point for the Huduma Guide service
// guidance engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huduma_agent",
	Short: "Kenyan government service guidance engine",
	Long:  "Huduma Guide resolves questions about Kenyan government services (IDs, passports, certificates, permits) into eligibility verdicts, office locations, costs, document checklists and step-by-step guidance, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
