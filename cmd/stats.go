package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/hoot/internal/problemgen"
	"github.com/abhisek/hoot/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solved problems and mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		stats, err := s.EventRepo().SolveStats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if stats.Solved == 0 {
			fmt.Println("No problems solved yet.")
			return nil
		}

		fmt.Printf("Solved:          %d\n", stats.Solved)
		fmt.Printf("First try:       %d (%d%%)\n", stats.FirstTry, stats.FirstTry*100/stats.Solved)
		fmt.Printf("Mistakes:        %d\n", stats.TotalMistakes)
		fmt.Printf("Last solved:     %s\n", humanize.Time(stats.LastSolved))

		solves, err := s.EventRepo().QuerySolves(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query solves: %w", err)
		}

		fmt.Println()
		fmt.Printf("%-16s  %-10s  %-8s  %s\n", "Time", "Problem", "Answer", "Mistakes")
		fmt.Println(strings.Repeat("─", 48))
		for _, e := range solves {
			p := problemgen.Problem{Decimal: e.Decimal, Integer: e.Integer}
			fmt.Printf("%-16s  %-10s  %-8s  %d\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				p.Plain(),
				e.Product,
				e.Mistakes,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent solves to show")
}
