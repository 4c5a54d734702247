package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/types"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services in the catalog",
	RunE:  runServices,
}

var countiesCmd = &cobra.Command{
	Use:   "counties",
	Short: "List the counties accepted in requests",
	RunE:  runCounties,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(countiesCmd)
}

func runServices(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tAUTHORITY")
	for _, entry := range cat.Services() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.ID, entry.DisplayName, entry.Category, entry.Authority)
	}
	return w.Flush()
}

func runCounties(_ *cobra.Command, _ []string) error {
	for _, county := range types.Counties {
		fmt.Println(county)
	}
	return nil
}
