package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wanjiru/huduma-guide/internal/config"
	"github.com/wanjiru/huduma-guide/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resolving service requests, chat guidance and catalog listings.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render SPA portal pages with a headless browser")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(serveConfigPath, config.Config{
		Port:       servePort,
		UseBrowser: serveUseBrowser,
		Verbose:    serveVerbose,
	})
	if err != nil {
		return err
	}

	engine, cleanup, err := buildEngine(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Port:               cfg.Port,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Engine:             engine,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
