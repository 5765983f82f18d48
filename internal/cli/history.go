package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvrp/history"
)

func newHistoryCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [instance]",
		Short: "List recorded runs, optionally for one instance.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := input.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.History == "" {
				return errors.New("history: --history is required")
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			store, err := history.Open(cfg.History)
			if err != nil {
				return err
			}
			defer store.Close()

			var runs []history.Run
			if input.best {
				best, err := store.Best(name)
				if err != nil {
					return err
				}
				runs = []history.Run{best}
			} else if runs, err = store.List(name); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tINSTANCE\tSTRATEGY\tWORKERS\tCOST\tELAPSED\tCREATED")
			for _, r := range runs {
				cost := "-"
				if r.Found {
					cost = fmt.Sprint(r.Cost)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%.3fs\t%s\n",
					shortID(r.ID), r.Instance, r.Strategy, r.Workers, cost,
					r.ElapsedDuration().Seconds(), time.Unix(0, r.CreatedAt).UTC().Format(time.RFC3339))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&input.flags.History, "history", "", "history file")
	cmd.Flags().BoolVar(&input.best, "best", false, "show only the cheapest feasible run")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
