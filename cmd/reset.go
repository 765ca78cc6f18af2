package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Prune the fetch history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must not be negative, got %d", keep)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.EventRepo().PruneFetches(cmd.Context(), keep)
		if err != nil {
			return fmt.Errorf("prune events: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d fetch events.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("keep", 0, "Number of most recent events to keep")
}
