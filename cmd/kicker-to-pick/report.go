// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qubone/kicker-to-pick/internal/catalog"
	"github.com/qubone/kicker-to-pick/internal/logbook"
	"github.com/qubone/kicker-to-pick/internal/report"
	"github.com/qubone/kicker-to-pick/internal/sleeper"
	"github.com/qubone/kicker-to-pick/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report <league-id>",
	Short: "Report rookie pick ownership from kicker roster slots",
	Long: `Report fetches the league's rosters, members, and traded picks, joins
them with each roster's kicker, and prints one line per rookie pick slot in
pick order. Traded picks resolve to the roster currently holding them; the
kicker shown is the one on the pick's originating roster.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	leagueID := args[0]
	cfg := loadConfig()
	ctx := cmd.Context()

	season, _ := cmd.Flags().GetString("season")
	rounds, _ := cmd.Flags().GetInt("rounds")
	format, _ := cmd.Flags().GetString("format")
	noLog, _ := cmd.Flags().GetBool("no-log")

	if rounds == 0 {
		rounds = cfg.Report.Rounds
	}

	client := sleeper.NewClient(cfg.Sleeper)

	league, err := client.League(ctx, leagueID)
	if err != nil {
		return err
	}

	rosters, err := client.Rosters(ctx, leagueID)
	if err != nil {
		return err
	}
	users, err := client.Users(ctx, leagueID)
	if err != nil {
		return err
	}
	tradedPicks, err := client.TradedPicks(ctx, leagueID)
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

	kickers, err := rosterKickers(ctx, store, rosters)
	if err != nil {
		return err
	}

	rep, err := report.Build(report.Snapshot{
		League:      league,
		Rosters:     rosters,
		Users:       users,
		TradedPicks: tradedPicks,
		Kickers:     kickers,
	}, report.Options{Season: season, Rounds: rounds}, time.Now())
	if err != nil {
		return err
	}

	var text strings.Builder
	report.RenderText(rep, &text)

	meta := logbook.Meta{
		LeagueID:    rep.LeagueID,
		LeagueName:  rep.LeagueName,
		GeneratedAt: rep.GeneratedAt,
		Lines:       len(rep.Lines),
	}
	return emit(text.String(), rep, format, noLog, meta, cfg.Logbook)
}

// rosterKickers resolves each roster's kickers through the local catalog.
func rosterKickers(ctx context.Context, store *catalog.Store, rosters []types.Roster) (map[int][]types.Player, error) {
	kickers := make(map[int][]types.Player, len(rosters))
	for _, r := range rosters {
		ks, err := store.KickersAmong(ctx, r.Players)
		if err != nil {
			return nil, fmt.Errorf("resolving kickers for roster %d: %w", r.ID, err)
		}
		if len(ks) > 0 {
			kickers[r.ID] = ks
		}
	}
	return kickers, nil
}

// emit prints the report in the requested format and, unless suppressed,
// appends the text rendering to the league log with its sidecar metadata.
func emit(text string, v any, format string, noLog bool, meta logbook.Meta, cfg types.LogbookConfig) error {
	switch format {
	case "text", "":
		fmt.Print(text)
	case "json":
		if err := report.RenderJSON(v, os.Stdout); err != nil {
			return err
		}
	case "yaml":
		if err := report.RenderYAML(v, os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}

	if noLog {
		return nil
	}

	path, err := logbook.Append(cfg, meta.LeagueName, strings.TrimRight(text, "\n"))
	if err != nil {
		return err
	}
	if err := logbook.WriteMeta(cfg, meta); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nOutput appended to %s\n", path)
	return nil
}

func init() {
	reportCmd.Flags().String("season", "", "rookie draft season (default: league season + 1)")
	reportCmd.Flags().Int("rounds", 0, "rookie draft rounds (default: league setting, then 4)")
	reportCmd.Flags().String("format", "text", "output format: text, json, or yaml")
	reportCmd.Flags().Bool("no-log", false, "skip appending the report to the league log")

	rootCmd.AddCommand(reportCmd)
}
