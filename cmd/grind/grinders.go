package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewListCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "list [QUERY]",
		Short:   "List grinders, optionally filtered by name",
		GroupID: gBasic,
		Long: `List grinders in the catalog.

QUERY matches any part of a grinder's name, ignoring case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			hits, err := b.Search(query)
			if err != nil {
				return fmt.Errorf("failed to list grinders: %w", err)
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), hits)
			}

			if len(hits) == 0 {
				cmd.Println(messages.T(messages.Fallback(), "common.noResults"))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSCALE")
			for _, h := range hits {
				scale := "labels"
				if h.Numeric {
					scale = "numeric"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", h.ID, h.Name, scale)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the grinders as JSON")

	return cmd
}

func NewRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "range ID",
		Short:   "Print the calibrated range of a grinder",
		GroupID: gBasic,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}

			g, err := b.Grinder(args[0])
			if err != nil {
				return fmt.Errorf("failed to get grinder: %w", err)
			}

			r, err := b.Range(args[0])
			if err != nil {
				return fmt.Errorf("failed to get range: %w", err)
			}

			cmd.Printf("%s: %s - %s\n", g.Name, bold("%s", r.Display.Min), bold("%s", r.Display.Max))
			return nil
		},
	}
}
