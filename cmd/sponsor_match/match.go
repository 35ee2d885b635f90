package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/sponsor-match/internal/matching"
	"github.com/jonathan/sponsor-match/internal/observability"
	"github.com/jonathan/sponsor-match/internal/types"
)

var (
	matchNGOsPath       string
	matchCorporatesPath string
	matchScoresOnly     bool
	matchVerbose        bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match two JSON entity files offline",
	Long:  `Score two JSON files of entities (an array of NGOs and an array of corporates) and print the optimal pairing, or the full score table with --scores.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchNGOsPath, "ngos", "", "Path to JSON array of NGOs (required)")
	matchCmd.Flags().StringVar(&matchCorporatesPath, "corporates", "", "Path to JSON array of corporates (required)")
	matchCmd.Flags().BoolVar(&matchScoresOnly, "scores", false, "Print the full pairwise score table instead of the optimal matching")
	matchCmd.Flags().BoolVar(&matchVerbose, "verbose", false, "Print a formatted report instead of raw JSON")
	_ = matchCmd.MarkFlagRequired("ngos")
	_ = matchCmd.MarkFlagRequired("corporates")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var ngos []types.Organization
	var corporates []types.Sponsor

	// The two input files are independent; load them concurrently.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadEntityFile(matchNGOsPath, &ngos)
	})
	g.Go(func() error {
		return loadEntityFile(matchCorporatesPath, &corporates)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	req := types.MatchRequest{NGOs: ngos, Corporates: corporates}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid entities: %w", err)
	}

	var pairs []types.MatchPair
	var err error
	if matchScoresOnly {
		pairs, err = matching.ComputeScores(ngos, corporates)
	} else {
		pairs, err = matching.ComputeOptimalMatching(ctx, ngos, corporates)
	}
	if err != nil {
		return err
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPopulations(ngos, corporates)
		printer.PrintMatches(pairs)
		return nil
	}

	out, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func loadEntityFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
