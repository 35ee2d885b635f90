package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/sponsor-match/internal/config"
	"github.com/jonathan/sponsor-match/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the /match/scores and /match/optimal endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config file and PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadServeConfig merges, in increasing precedence: defaults, config file,
// environment, --port flag.
func loadServeConfig() (*config.Config, error) {
	path := serveConfigPath
	if path == "" {
		path = os.Getenv("SPONSOR_MATCH_CONFIG")
	}

	var cfg *config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
	}

	env, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if env.Port != 0 {
		cfg.Port = env.Port
	}
	if env.MaxConcurrentMatches != 0 {
		cfg.MaxConcurrentMatches = env.MaxConcurrentMatches
	}
	if env.Verbose {
		cfg.Verbose = true
	}

	if servePort != 0 {
		cfg.Port = servePort
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
