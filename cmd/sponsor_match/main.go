// Package main provides the entry point for the sponsor-match service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sponsor_match",
	Short: "NGO / corporate sponsor matching service",
	Long:  "sponsor_match scores NGO and corporate sponsor compatibility and computes globally optimal one-to-one pairings, served over a REST API or run offline against JSON files.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
