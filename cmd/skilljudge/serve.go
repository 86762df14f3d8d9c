package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/config"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/server"
)

var (
	servePort  int
	configPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume upload and role readiness endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8000)")
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Defaults())
	if servePort != 0 {
		merged.Port = servePort
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	srv, err := server.New(merged)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}
