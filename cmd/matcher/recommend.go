package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/progracyd/capstone-matcher/internal/db"
	"github.com/progracyd/capstone-matcher/internal/lexicon"
	"github.com/progracyd/capstone-matcher/internal/observability"
	"github.com/progracyd/capstone-matcher/internal/recommend"
	"github.com/progracyd/capstone-matcher/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank client projects for student teams",
	Long:  "Loads a team roster and project catalog from JSON files, scores every team against every eligible project, and prints the ranked recommendations. With --db-url the results are also persisted.",
	RunE:  runRecommend,
}

var (
	recommendRoster      string
	recommendCatalog     string
	recommendTeam        int64
	recommendAlpha       float64
	recommendBeta        float64
	recommendTop         int
	recommendDatabaseURL string
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendRoster, "roster", "", "Path to the roster JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendCatalog, "catalog", "", "Path to the project catalog JSON file (required)")
	recommendCmd.Flags().Int64Var(&recommendTeam, "team", 0, "Recommend for a single group ID only")
	recommendCmd.Flags().Float64Var(&recommendAlpha, "alpha", 0.7, "Weight for the match score")
	recommendCmd.Flags().Float64Var(&recommendBeta, "beta", 0.3, "Weight for the complementarity score")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 6, "Number of projects to recommend per team")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "db-url", "", "Persist results to this database (optional)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print each team's aggregate skill profile")

	if err := recommendCmd.MarkFlagRequired("roster"); err != nil {
		panic(fmt.Sprintf("failed to mark roster flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	if recommendAlpha < 0 || recommendBeta < 0 {
		return fmt.Errorf("alpha and beta must be non-negative, got %.2f and %.2f", recommendAlpha, recommendBeta)
	}
	if recommendTop <= 0 {
		return fmt.Errorf("top must be greater than 0, got %d", recommendTop)
	}

	members, err := types.LoadRoster(recommendRoster)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	projects, err := types.LoadCatalog(recommendCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	weights := recommend.DefaultWeights()
	weights.Alpha = recommendAlpha
	weights.Beta = recommendBeta
	weights.TopK = recommendTop

	lex := lexicon.Default()
	engine := recommend.New(lex, weights)
	engine.LoadData(members, projects)

	ctx := context.Background()

	results := make(map[int64][]types.Recommendation)
	if recommendTeam != 0 {
		recs, err := engine.Recommend(recommendTeam)
		if err != nil {
			return fmt.Errorf("failed to recommend for group %d: %w", recommendTeam, err)
		}
		results[recommendTeam] = recs
	} else {
		results, err = engine.RecommendAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to compute recommendations: %w", err)
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	snap := engine.Snapshot()
	for _, groupID := range snap.TeamIDs() {
		recs, ok := results[groupID]
		if !ok {
			continue
		}
		if recommendVerbose {
			if profile, ok := snap.Team(groupID); ok {
				printer.PrintTeamProfile(lex, profile)
			}
		}
		printer.PrintRecommendations(groupID, recs)
	}

	if recommendDatabaseURL != "" {
		database, err := db.Connect(ctx, recommendDatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		for groupID, recs := range results {
			if err := database.ReplaceGroupRecommendations(ctx, groupID, recs); err != nil {
				return fmt.Errorf("failed to save recommendations for group %d: %w", groupID, err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved recommendations for %d groups\n", len(results))
	}

	return nil
}
