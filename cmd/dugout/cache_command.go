package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"dugout/internal/config"
	"dugout/internal/store"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Roster cache utilities",
	}

	cacheCmd.AddCommand(newCacheStatusCommand(ctx))

	return cacheCmd
}

func newCacheStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show roster cache counts split by freshness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store, _ *slog.Logger) error {
				stats, err := st.RosterCacheStats(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, stats)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Freshness window: %dh\n", cfg.Cache.FreshnessHours)
				fmt.Fprintln(out, renderTable(out,
					[]string{"Total", "Fresh", "Stale"},
					[][]string{{
						strconv.Itoa(stats.Total),
						strconv.Itoa(stats.Fresh),
						strconv.Itoa(stats.Stale),
					}},
					[]columnAlignment{alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}
