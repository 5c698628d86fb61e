// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qubone/kicker-to-pick/internal/catalog"
	"github.com/qubone/kicker-to-pick/internal/logbook"
	"github.com/qubone/kicker-to-pick/internal/report"
	"github.com/qubone/kicker-to-pick/internal/sleeper"
)

var scanCmd = &cobra.Command{
	Use:   "scan <league-id> [draft-id]",
	Short: "Scan a kicker draft and list the rookie picks it assigns",
	Long: `Scan walks a kicker draft in selection order: each kicker taken claims
the next rookie pick slot. When the draft ID is omitted the league's most
recent draft is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	leagueID := args[0]
	cfg := loadConfig()
	ctx := cmd.Context()

	teams, _ := cmd.Flags().GetInt("teams")
	fallbackName, _ := cmd.Flags().GetString("name")
	format, _ := cmd.Flags().GetString("format")
	noLog, _ := cmd.Flags().GetBool("no-log")

	scanCfg := cfg.Scan
	if teams > 0 {
		scanCfg.Teams = teams
	}

	client := sleeper.NewClient(cfg.Sleeper)

	league, err := client.League(ctx, leagueID)
	if err != nil {
		return err
	}
	leagueName := league.Name
	if leagueName == "" {
		leagueName = fallbackName
	}

	var draftID string
	if len(args) > 1 {
		draftID = args[1]
	} else {
		fmt.Fprintf(os.Stderr, "Searching for latest draft in league %s...\n", leagueID)
		draft, err := client.LatestDraft(ctx, leagueID)
		if err != nil {
			return err
		}
		draftID = draft.ID
		fmt.Fprintf(os.Stderr, "Target Draft: %s\n", draftID)
	}

	users, err := client.Users(ctx, leagueID)
	if err != nil {
		return err
	}
	picks, err := client.DraftPicks(ctx, draftID)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureFresh(ctx, client.AllPlayers, os.Stderr); err != nil {
		return err
	}

	filter := report.PositionKickerFilter(func(playerID string) (string, bool) {
		pos, ok, err := store.Position(ctx, playerID)
		if err != nil {
			return "", false
		}
		return pos, ok
	})

	season, err := report.NextSeason(league.Season)
	if err != nil {
		return err
	}

	rep := report.BuildScan(picks, users, leagueName, draftID, season, scanCfg, filter, time.Now())

	var text strings.Builder
	report.RenderScanText(rep, &text)

	meta := logbook.Meta{
		LeagueID:    leagueID,
		LeagueName:  leagueName,
		GeneratedAt: rep.GeneratedAt,
		Lines:       len(rep.Lines),
	}
	return emit(text.String(), rep, format, noLog, meta, cfg.Logbook)
}

func init() {
	scanCmd.Flags().IntP("teams", "t", 0, "number of teams (picks per round)")
	scanCmd.Flags().StringP("name", "n", "Sleeper League", "fallback league name when the API reports none")
	scanCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	scanCmd.Flags().Bool("no-log", false, "skip appending the report to the league log")

	rootCmd.AddCommand(scanCmd)
}
