// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"time"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

// KickerFilter reports whether a draft selection took a kicker.
type KickerFilter func(types.DraftSelection) bool

// MetadataKickerFilter decides from the position Sleeper embeds in the
// selection metadata. Punters qualify.
func MetadataKickerFilter(sel types.DraftSelection) bool {
	pos := sel.Metadata.Position
	return pos == "K" || pos == "P"
}

// PositionKickerFilter decides from a player-ID position lookup (the local
// catalog), falling back to the selection metadata for unknown players.
func PositionKickerFilter(position func(playerID string) (string, bool)) KickerFilter {
	return func(sel types.DraftSelection) bool {
		if pos, ok := position(sel.PlayerID); ok {
			return pos == "K" || pos == "P"
		}
		return MetadataKickerFilter(sel)
	}
}

// BuildScan produces the draft-scan report: kicker selections in draft
// order, labelled round.slot by position among the kept picks, capped at
// Teams*Rounds.
func BuildScan(sels []types.DraftSelection, users []types.LeagueUser, leagueName, draftID, season string, cfg types.ScanConfig, isKicker KickerFilter, now time.Time) types.ScanReport {
	teams := cfg.Teams
	if teams <= 0 {
		teams = 12
	}
	rounds := cfg.Rounds
	if rounds <= 0 {
		rounds = defaultRounds
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}

	low := cfg.LowRemaining
	if low <= 0 {
		low = 5
	}

	rep := types.ScanReport{
		LeagueName:   leagueName,
		DraftID:      draftID,
		Season:       season,
		GeneratedAt:  now,
		Teams:        teams,
		MaxPicks:     teams * rounds,
		LowRemaining: low,
	}

	i := 0
	for _, sel := range sels {
		if isKicker != nil && !isKicker(sel) {
			continue
		}
		if i >= rep.MaxPicks {
			break
		}
		rep.Lines = append(rep.Lines, types.ScanLine{
			Round:  i/teams + 1,
			Slot:   i%teams + 1,
			Owner:  displayName(names, sel.PickedBy),
			Kicker: selectionName(sel),
		})
		i++
	}

	return rep
}

func selectionName(sel types.DraftSelection) string {
	return strings.TrimSpace(sel.Metadata.FirstName + " " + sel.Metadata.LastName)
}
