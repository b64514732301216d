package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"dugout/internal/config"
	"dugout/internal/store"
	"dugout/internal/teamid"
)

func newRosterCommand(ctx *commandContext) *cobra.Command {
	var division string
	var affiliate string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "roster <team name>",
		Short: "Resolve a team and import its roster",
		Long: `Resolve a team name and print its roster. Rosters fresher than the cache
window are served locally; otherwise the live page is fetched and the cache
updated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withStore(func(cfg *config.Config, st *store.Store, logger *slog.Logger) error {
				resolver := teamid.NewResolver(st, cfg, logger)
				importer := teamid.NewImporter(resolver, st, ctx.pageSource(cfg), cfg, logger)

				result, err := importer.ImportRoster(cmd.Context(), query, teamid.Hints{
					Division:  division,
					Affiliate: affiliate,
				}, teamid.ImportOptions{Refresh: refresh})
				if errors.Is(err, teamid.ErrNoMatch) {
					if ctx.jsonOutput() {
						if writeErr := writeJSON(cmd, result); writeErr != nil {
							return writeErr
						}
						return err
					}
					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "No registered team matched %q.\n", query)
					for _, name := range result.Resolution.Candidates {
						fmt.Fprintf(out, "  %s\n", name)
					}
					return err
				}
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				res := result.Resolution
				source := "live fetch"
				if result.FromCache {
					source = "cache"
				}
				fmt.Fprintf(out, "%s (team %s, confidence %d, via %s)\n",
					res.MatchedName, res.Team.TeamID, res.Confidence, source)

				rows := make([][]string, 0, len(result.Roster.Players))
				for _, player := range result.Roster.Players {
					rows = append(rows, []string{player.Number, player.Name})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"#", "Player"},
					rows,
					[]columnAlignment{alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&division, "division", "", "Division hint (e.g. 11U), overrides the parsed one")
	cmd.Flags().StringVar(&affiliate, "affiliate", "", "Restrict matching to one affiliate number")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch the live page even when the cache is fresh")
	return cmd
}
