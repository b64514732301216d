package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dugout/internal/config"
	"dugout/internal/store"
	"dugout/internal/teamid"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var division string
	var affiliate string

	cmd := &cobra.Command{
		Use:   "search <team name>",
		Short: "Resolve a tournament team name against the registered directory",
		Long: `Resolve a free-form team name (as it appears on a tournament listing) to a
registered team. The division is parsed from the name when present; pass
--division to override it. On a miss the registered names closest in scope
are listed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withStore(func(cfg *config.Config, st *store.Store, logger *slog.Logger) error {
				resolver := teamid.NewResolver(st, cfg, logger)
				res, err := resolver.Resolve(cmd.Context(), query, teamid.Hints{
					Division:  division,
					Affiliate: affiliate,
				})
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					if writeErr := writeJSON(cmd, res); writeErr != nil {
						return writeErr
					}
					if !res.Matched {
						return teamid.ErrNoMatch
					}
					return nil
				}

				out := cmd.OutOrStdout()
				if !res.Matched {
					fmt.Fprintf(out, "No registered team matched %q (confidence floor %d).\n",
						query, cfg.Matching.MinConfidence)
					if len(res.Candidates) > 0 {
						fmt.Fprintln(out, "Registered teams considered:")
						for _, name := range res.Candidates {
							fmt.Fprintf(out, "  %s\n", name)
						}
					}
					return teamid.ErrNoMatch
				}

				rows := [][]string{{
					res.Team.TeamID,
					res.MatchedName,
					strconv.Itoa(res.Confidence),
					res.SearchTerm,
				}}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Team ID", "Matched Name", "Confidence", "Search Term"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&division, "division", "", "Division hint (e.g. 11U), overrides the parsed one")
	cmd.Flags().StringVar(&affiliate, "affiliate", "", "Restrict matching to one affiliate number")
	return cmd
}
