package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dugout/internal/config"
	"dugout/internal/nameparse"
	"dugout/internal/services/obastats"
	"dugout/internal/store"
)

func newTeamsCommand(ctx *commandContext) *cobra.Command {
	teamsCmd := &cobra.Command{
		Use:   "teams",
		Short: "Manage the registered team directory",
	}

	teamsCmd.AddCommand(newTeamsListCommand(ctx))
	teamsCmd.AddCommand(newTeamsShowCommand(ctx))
	teamsCmd.AddCommand(newTeamsRegisterCommand(ctx))
	teamsCmd.AddCommand(newTeamsDeactivateCommand(ctx))

	return teamsCmd
}

func newTeamsListCommand(ctx *commandContext) *cobra.Command {
	var division string
	var organization string
	var affiliate string
	var includeInactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store, _ *slog.Logger) error {
				teams, err := st.FindTeams(cmd.Context(), store.Filter{
					Division:     division,
					Organization: organization,
					Affiliate:    affiliate,
					ActiveOnly:   !includeInactive,
				})
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, teams)
				}

				out := cmd.OutOrStdout()
				if len(teams) == 0 {
					fmt.Fprintln(out, "No teams registered.")
					return nil
				}
				rows := make([][]string, 0, len(teams))
				for _, team := range teams {
					rows = append(rows, []string{
						team.TeamID,
						team.TeamName,
						team.Division,
						team.Level,
						team.Affiliate,
						strconv.Itoa(team.PlayerCount),
						yesNo(team.IsActive),
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Team ID", "Name", "Division", "Level", "Affiliate", "Players", "Active"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&division, "division", "", "Filter by division (exact match)")
	cmd.Flags().StringVar(&organization, "org", "", "Filter by organization (exact match)")
	cmd.Flags().StringVar(&affiliate, "affiliate", "", "Filter by affiliate number")
	cmd.Flags().BoolVar(&includeInactive, "all", false, "Include deactivated teams")
	return cmd
}

func newTeamsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <team-id>",
		Short: "Show one registered team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID := strings.TrimSpace(args[0])
			return ctx.withStore(func(cfg *config.Config, st *store.Store, _ *slog.Logger) error {
				team, err := st.GetTeam(cmd.Context(), teamID)
				if err != nil {
					return err
				}
				if team == nil {
					return fmt.Errorf("team %s is not registered", teamID)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, team)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Team ID:      %s\n", team.TeamID)
				fmt.Fprintf(out, "Name:         %s\n", team.TeamName)
				fmt.Fprintf(out, "Organization: %s\n", team.Organization)
				fmt.Fprintf(out, "Division:     %s\n", team.Division)
				fmt.Fprintf(out, "Level:        %s\n", team.Level)
				fmt.Fprintf(out, "Affiliate:    %s\n", team.Affiliate)
				fmt.Fprintf(out, "Roster URL:   %s\n", team.RosterURL)
				fmt.Fprintf(out, "Has roster:   %s (%d players)\n", yesNo(team.HasRoster), team.PlayerCount)
				fmt.Fprintf(out, "Active:       %s\n", yesNo(team.IsActive))
				fmt.Fprintf(out, "First seen:   %s\n", team.FirstSeen.Format(time.RFC3339))
				if team.LastScanned != nil {
					fmt.Fprintf(out, "Last scanned: %s\n", team.LastScanned.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}

func newTeamsRegisterCommand(ctx *commandContext) *cobra.Command {
	var affiliate string
	var rosterURL string

	cmd := &cobra.Command{
		Use:   "register <team-id> <team name>",
		Short: "Register a team or update its registration",
		Long: `Register a team under its stats-site ID. Organization, division, and level
are parsed from the name. Registering an existing ID updates the stored name
and parsed fields in place.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID := strings.TrimSpace(args[0])
			teamName := strings.Join(args[1:], " ")
			return ctx.withStore(func(cfg *config.Config, st *store.Store, _ *slog.Logger) error {
				parsed := nameparse.Parse(teamName)
				url := strings.TrimSpace(rosterURL)
				if url == "" && affiliate != "" {
					url = obastats.RosterURL(cfg.Source.BaseURL, affiliate, teamID)
				}

				rec := &store.TeamRecord{
					TeamID:       teamID,
					TeamName:     teamName,
					Organization: parsed.Organization,
					Division:     parsed.Division,
					Level:        parsed.Level,
					Affiliate:    strings.TrimSpace(affiliate),
					RosterURL:    url,
					IsActive:     true,
				}
				if existing, err := st.GetTeam(cmd.Context(), teamID); err != nil {
					return err
				} else if existing != nil {
					rec.HasRoster = existing.HasRoster
					rec.PlayerCount = existing.PlayerCount
					rec.FirstSeen = existing.FirstSeen
					rec.LastScanned = existing.LastScanned
				}
				if err := st.UpsertTeam(cmd.Context(), rec); err != nil {
					return err
				}

				if ctx.jsonOutput() {
					stored, err := st.GetTeam(cmd.Context(), teamID)
					if err != nil {
						return err
					}
					return writeJSON(cmd, stored)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as team %s (division %q, level %q)\n",
					teamName, teamID, parsed.Division, parsed.Level)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&affiliate, "affiliate", "", "Affiliate number the team belongs to")
	cmd.Flags().StringVar(&rosterURL, "roster-url", "", "Explicit roster page URL")
	return cmd
}

func newTeamsDeactivateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <team-id>",
		Short: "Mark a team inactive without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID := strings.TrimSpace(args[0])
			return ctx.withStore(func(cfg *config.Config, st *store.Store, _ *slog.Logger) error {
				if err := st.DeactivateTeam(cmd.Context(), teamID); err != nil {
					return err
				}
				if ctx.jsonOutput() {
					team, err := st.GetTeam(cmd.Context(), teamID)
					if err != nil {
						return err
					}
					return writeJSON(cmd, team)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deactivated team %s\n", teamID)
				return nil
			})
		},
	}
}
