package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/progracyd/capstone-matcher/internal/classify"
	"github.com/progracyd/capstone-matcher/internal/lexicon"
	"github.com/progracyd/capstone-matcher/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify skill strength from a free-text description",
	Long:  "Reads a plain-text skill description from a file and prints each recognized skill with its inferred strength level (1-5).",
	RunE:  runAnalyze,
}

var (
	analyzeInput   string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to a text file with the skill description (required)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary box")

	if err := analyzeCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	classifier := classify.New(lexicon.Default())
	strengths := classifier.Classify(string(data))

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintStrengthMap(analyzeInput, strengths)
		return nil
	}

	if len(strengths) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No recognized skills")
		return nil
	}

	skills := make([]string, 0, len(strengths))
	for skill := range strengths {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	for _, skill := range skills {
		_, _ = fmt.Fprintf(os.Stdout, "%s: %d\n", skill, strengths[skill])
	}

	return nil
}
