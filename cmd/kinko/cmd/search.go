package cmd

import (
	"fmt"
	"strings"

	"github.com/kinko/pms/search"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		records string
		pick    int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank securities and portfolios against a query",
		Long: `Rank the records of a JSON or YAML file against a query, the way the
autocomplete box does.

Each record has a symbol and name (a security) or a name and optional
manager (a portfolio).

Examples:
  kinko search فولاد -f records.json
  kinko search "سبد" -f portfolios.yaml --pick 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := records
			if path == "" {
				path = a.cfg.Search.Records
			}
			if path == "" {
				return fmt.Errorf("no records file: use --records or search.records")
			}

			recs, err := search.LoadRecords(path)
			if err != nil {
				return err
			}
			a.log.Debug("records loaded", "path", path, "count", len(recs))

			out := cmd.OutOrStdout()
			ac := search.NewAutocomplete(recs, func(r search.Record) {
				fmt.Fprintf(out, "selected: %s\n", r.PrimaryLabel())
			}, search.WithRanker(a.cfg.Ranker()))

			matches := ac.Input(strings.Join(args, " "))
			if len(matches) == 0 {
				fmt.Fprintln(out, "no matches")
				return nil
			}
			for i, m := range matches {
				fmt.Fprintf(out, "%d. [%3d] %s", i+1, m.Score, m.Record.PrimaryLabel())
				if sub := m.Record.SecondaryLabel(); sub != "" {
					fmt.Fprintf(out, " - %s", sub)
				}
				fmt.Fprintln(out)
			}

			if pick > 0 {
				if _, err := ac.Select(pick - 1); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&records, "records", "f", "", "records file, JSON or YAML (default search.records)")
	cmd.Flags().IntVarP(&pick, "pick", "p", 0, "select the n-th match (1-based)")
	return cmd
}
