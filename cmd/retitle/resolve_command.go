package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"retitle/internal/showmatch"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Resolve extracted show names against the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cleanup, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer cleanup()

			results, err := session.ResolveNames(cmd.Context(), args)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				show, id := "-", "-"
				if result.Decision.Chosen != nil {
					show = result.Decision.Chosen.Name
					id = result.Decision.Chosen.ID
				}
				rows = append(rows, []string{
					result.Query,
					result.Decision.Outcome.String(),
					show,
					id,
					result.Decision.Reason,
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Query", "Outcome", "Show", "ID", "Reason"}, rows))

			for _, result := range results {
				if result.Decision.Outcome != showmatch.OutcomeAmbiguous {
					continue
				}
				fmt.Fprintf(out, "\nCandidates for %q:\n", result.Query)
				ranked := make([][]string, 0, len(result.Decision.Ranked))
				for _, scored := range result.Decision.Ranked {
					ranked = append(ranked, []string{
						scored.Candidate.ID,
						scored.Candidate.Name,
						yearLabel(scored.Candidate.FirstAiredYear),
						fmt.Sprintf("%.2f", scored.Score),
					})
				}
				fmt.Fprintln(out, renderTable(out, []string{"ID", "Name", "Year", "Score"}, ranked, 3))
				fmt.Fprintf(out, "Pin one with: retitle pin set %q ID\n", result.Query)
			}
			return nil
		},
	}
}

func yearLabel(year int) string {
	if year == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", year)
}
