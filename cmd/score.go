package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hoot/internal/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the number of solved problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := score.NewLedger(s.CounterRepo()).Read(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Score: %d\n", n)
		return nil
	},
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the score to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := score.NewLedger(s.CounterRepo()).Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Score reset to 0.")
		return nil
	},
}

func init() {
	scoreResetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
	scoreCmd.AddCommand(scoreResetCmd)
}
