// Command check_portals verifies that every portal URL in the service
// catalog is still reachable and serves usable text. Stale government
// portal links surface here before users hit them.
//
// Usage:
//
//	go run cmd/tools/check_portals/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/fetch"
)

func main() {
	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Portal Link Check ===")
	fmt.Println()

	failures := 0
	for _, entry := range cat.Services() {
		if entry.PortalURL == "" {
			fmt.Printf("SKIP  %-22s (no portal URL)\n", entry.ID)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		result, err := fetch.URL(ctx, entry.PortalURL, fetch.DefaultOptions())
		cancel()

		if err != nil {
			fmt.Printf("FAIL  %-22s %s (%v)\n", entry.ID, entry.PortalURL, err)
			failures++
			continue
		}

		text, err := fetch.ExtractMainText(result.HTML, fetch.DefaultTextSelectors())
		if err != nil {
			fmt.Printf("WARN  %-22s %s (extraction failed: %v)\n", entry.ID, entry.PortalURL, err)
			continue
		}

		status := "OK  "
		if fetch.ShouldUseBrowser(text) {
			// Thin static HTML usually means a SPA shell; the snapshotter
			// will need the browser fallback for this one.
			status = "THIN"
		}
		fmt.Printf("%s  %-22s %s (%d chars extracted)\n", status, entry.ID, entry.PortalURL, len(text))
	}

	fmt.Println()
	if failures > 0 {
		fmt.Printf("%d portal(s) unreachable\n", failures)
		os.Exit(1)
	}
	fmt.Println("All portals reachable")
}
