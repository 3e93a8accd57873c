package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPinCommand(ctx *commandContext) *cobra.Command {
	pinCmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage pinned show selections",
	}

	pinCmd.AddCommand(newPinSetCommand(ctx))
	pinCmd.AddCommand(newPinClearCommand(ctx))
	pinCmd.AddCommand(newPinListCommand(ctx))

	return pinCmd
}

func newPinSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set QUERY ID",
		Short: "Pin a show id for a query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pins, err := ctx.openPins()
			if err != nil {
				return err
			}
			defer pins.Close()

			if err := pins.SetPin(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pinned %q to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newPinClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear QUERY",
		Short: "Remove the pin for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pins, err := ctx.openPins()
			if err != nil {
				return err
			}
			defer pins.Close()

			removed, err := pins.ClearPin(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if removed {
				fmt.Fprintf(out, "Cleared pin for %q\n", args[0])
			} else {
				fmt.Fprintf(out, "No pin found for %q\n", args[0])
			}
			return nil
		},
	}
}

func newPinListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pinned show selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			pins, err := ctx.openPins()
			if err != nil {
				return err
			}
			defer pins.Close()

			entries, err := pins.List(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No pins recorded in %s\n", pins.Path())
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.Query,
					entry.CandidateID,
					entry.UpdatedAt.Format(time.RFC3339),
				})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Query", "ID", "Updated"}, rows))
			return nil
		},
	}
}
