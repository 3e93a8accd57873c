package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"retitle/internal/config"
	"retitle/internal/resolve"
	"retitle/internal/scan"
	"retitle/internal/showmatch"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan DIR",
		Short: "Scan a directory and plan episode renames",
		Long: `Scan DIR for video files, resolve each show against the catalog,
select episode titles (cascading choices across files that share
alternate-order titles), and print the resulting rename plan. Files are
never renamed; the plan is for review.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			files, err := scan.Walk(root, cfg.Scan.VideoExtensions)
			if err != nil {
				return err
			}

			session, cleanup, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := session.Plan(cmd.Context(), files)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, report)
			}
			printPlan(cmd, report)
			return nil
		},
	}
}

func printPlan(cmd *cobra.Command, report *resolve.Report) {
	out := cmd.OutOrStdout()

	var skipped, unresolved int
	rows := make([][]string, 0, len(report.Files))
	for i, file := range report.Files {
		name := filepath.Base(file.Path)
		if file.Skipped {
			skipped++
			rows = append(rows, []string{name, "-", "-", "(no episode marker)"})
			continue
		}
		episode := fmt.Sprintf("S%02dE%02d", file.Parsed.Season, file.Parsed.Episode)
		if file.Decision.Outcome != showmatch.OutcomeResolved {
			unresolved++
			rows = append(rows, []string{name, file.Parsed.Show, episode, file.Decision.Reason})
			continue
		}
		proposed, ok := report.ProposedName(i)
		if !ok {
			proposed = "-"
		}
		rows = append(rows, []string{name, file.Decision.Chosen.Name, episode, proposed})
	}
	fmt.Fprintln(out, renderTable(out, []string{"File", "Show", "Episode", "Proposed"}, rows))

	fmt.Fprintf(out, "\n%d files: %d planned, %d unresolved, %d skipped\n",
		len(report.Files), len(report.Files)-skipped-unresolved, unresolved, skipped)
	if len(report.Changed) > 0 {
		fmt.Fprintf(out, "Title hints settled %d chained episode titles\n", len(report.Changed))
	}
}
