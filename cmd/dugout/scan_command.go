package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dugout/internal/config"
	"dugout/internal/scan"
	"dugout/internal/store"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var affiliate string
	var fromID int
	var toID int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Probe affiliate ID ranges to discover teams",
		Long: `Probe the known-active team ID ranges sequentially, registering every page
that turns out to be a real team and caching its roster. Requests are rate
limited; a full scan takes a while by design of the source site.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			affiliate = strings.TrimSpace(affiliate)
			if (fromID != 0 || toID != 0) && affiliate == "" {
				return fmt.Errorf("--from/--to require --affiliate")
			}
			if fromID != 0 || toID != 0 {
				if fromID <= 0 || toID < fromID {
					return fmt.Errorf("invalid ID range %d-%d", fromID, toID)
				}
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store, logger *slog.Logger) error {
				targets := scan.TargetsFromConfig(cfg)
				if affiliate != "" {
					targets = filterTargets(targets, affiliate)
					if len(targets) == 0 && fromID == 0 {
						return fmt.Errorf("no scan targets for affiliate %s", affiliate)
					}
					if fromID != 0 {
						targets = []scan.Target{{
							Affiliate: affiliate,
							Name:      affiliate,
							Ranges:    []scan.IDRange{{Start: fromID, End: toID}},
						}}
					}
				}

				scanner := scan.NewScanner(st, ctx.pageSource(cfg), cfg, logger)
				report, err := scanner.Run(cmd.Context(), targets)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, report)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Scan %s probed %d IDs and discovered %d teams in %s\n",
					report.RunID, report.Probed, report.Discovered, report.Duration)
				rows := make([][]string, 0, len(report.PerAffiliate))
				for _, target := range targets {
					rows = append(rows, []string{
						target.Name,
						target.Affiliate,
						strconv.Itoa(report.PerAffiliate[target.Name]),
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Affiliate", "Number", "Discovered"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&affiliate, "affiliate", "", "Scan only this affiliate number")
	cmd.Flags().IntVar(&fromID, "from", 0, "First team ID to probe (requires --affiliate)")
	cmd.Flags().IntVar(&toID, "to", 0, "Last team ID to probe (requires --affiliate)")
	return cmd
}

func filterTargets(targets []scan.Target, affiliate string) []scan.Target {
	var filtered []scan.Target
	for _, target := range targets {
		if target.Affiliate == affiliate {
			filtered = append(filtered, target)
		}
	}
	return filtered
}
