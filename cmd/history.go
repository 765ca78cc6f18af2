package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reshuffle/admin/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent validation fetches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failed, _ := cmd.Flags().GetBool("failed")
		endpoint, _ := cmd.Flags().GetString("endpoint")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().RecentFetches(cmd.Context(), store.QueryOpts{
			Limit:    limit,
			Failed:   failed,
			Endpoint: endpoint,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No fetch events found.")
			return nil
		}

		fmt.Fprintf(w, "%-5s  %-19s  %-4s  %-8s  %-8s  %-7s  %-2s  %s\n",
			"ID", "Timestamp", "Form", "Subject", "Part", "Ms", "OK", "Error")
		fmt.Fprintln(w, strings.Repeat("─", 90))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(w, "%-5d  %-19s  %-4s  %-8s  %-8s  %-7d  %-2s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Endpoint,
				orNone(e.SubjectID),
				orNone(e.PartID),
				e.LatencyMs,
				ok,
				e.Error,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	historyCmd.Flags().Bool("failed", false, "Only show failed fetches")
	historyCmd.Flags().String("endpoint", "", "Filter by form (part or task)")
}
