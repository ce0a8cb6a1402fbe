package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best results for a variant",
	Long: `Display the top 10 results for the given variant (default: snake).
Results are ranked by food eaten, then by fewest ticks.

Examples:
  snake scores
  snake scores snake_feast
  snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	v, _ := snake.LookupVariant(variant)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearResults(variant); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared results for %s.\n", v.Title)
		return nil
	}

	results, err := store.TopResults(variant, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Results - %s\n", v.Title)
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'snake play %s' to set the first one!\n", variant)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Food", "Length", "Ticks", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "----", "------", "-----", "----")
	for i, r := range results {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-7d  %s\n",
			i+1, r.Score, r.Length, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(variant)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.1f  Longest: %d\n",
			stats.Games, stats.BestScore, stats.AvgScore, stats.MaxLength)
	}
	return nil
}
