// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report joins a fetched league snapshot into the ordered
// kicker-to-pick report. Builders are pure: same snapshot and clock in,
// same report out.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

// Snapshot holds everything the roster-mode builder joins. It is assembled
// by the command layer from one run's fetches and never mutated.
type Snapshot struct {
	League      *types.League
	Rosters     []types.Roster
	Users       []types.LeagueUser
	TradedPicks []types.TradedPick

	// Kickers maps roster ID to the kickers on that roster, ordered by
	// player ID.
	Kickers map[int][]types.Player
}

// Options control the pick universe of a roster-mode report.
type Options struct {
	// Season is the rookie draft year. Empty means the league season + 1.
	Season string

	// Rounds overrides the round count. Zero falls back to the league's
	// draft_rounds setting, then to the default of 4.
	Rounds int
}

const defaultRounds = 4

// Build produces the roster-mode report: one line per rookie pick slot,
// ordered ascending by (round, slot), each naming the current owner and
// the kicker on the pick's originating roster. Traded picks resolve to
// the roster holding them now.
func Build(snap Snapshot, opts Options, now time.Time) (*types.Report, error) {
	if snap.League == nil {
		return nil, fmt.Errorf("snapshot has no league")
	}
	if len(snap.Rosters) == 0 {
		return nil, fmt.Errorf("league %s has no rosters", snap.League.ID)
	}

	season := opts.Season
	if season == "" {
		next, err := NextSeason(snap.League.Season)
		if err != nil {
			return nil, err
		}
		season = next
	}

	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = snap.League.Settings.DraftRounds
	}
	if rounds <= 0 {
		rounds = defaultRounds
	}

	// Slot order follows roster ID, matching Sleeper's draft board.
	rosters := make([]types.Roster, len(snap.Rosters))
	copy(rosters, snap.Rosters)
	sort.Slice(rosters, func(i, j int) bool { return rosters[i].ID < rosters[j].ID })

	rosterByID := make(map[int]types.Roster, len(rosters))
	for _, r := range rosters {
		rosterByID[r.ID] = r
	}

	names := make(map[string]string, len(snap.Users))
	for _, u := range snap.Users {
		names[u.ID] = u.DisplayName
	}

	// (round, originating roster) → roster currently holding the pick.
	traded := make(map[[2]int]int)
	for _, tp := range snap.TradedPicks {
		if tp.Season != season {
			continue
		}
		traded[[2]int{tp.Round, tp.RosterID}] = tp.OwnerID
	}

	rep := &types.Report{
		LeagueID:    snap.League.ID,
		LeagueName:  snap.League.Name,
		Season:      season,
		GeneratedAt: now,
	}

	for round := 1; round <= rounds; round++ {
		for slot, origin := range rosters {
			line := types.PickLine{
				Season: season,
				Round:  round,
				Slot:   slot + 1,
			}

			holder := origin
			if ownerID, ok := traded[[2]int{round, origin.ID}]; ok && ownerID != origin.ID {
				line.Traded = true
				if r, ok := rosterByID[ownerID]; ok {
					holder = r
				}
			}
			line.Owner = displayName(names, holder.OwnerID)

			if kickers := snap.Kickers[origin.ID]; len(kickers) > 0 {
				line.Kicker = kickers[0].FullName()
				line.ExtraKickers = len(kickers) - 1
			}

			rep.Lines = append(rep.Lines, line)
		}
	}

	return rep, nil
}

func displayName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok && name != "" {
		return name
	}
	return "Unknown"
}

// NextSeason returns the year after a Sleeper season string.
func NextSeason(season string) (string, error) {
	year, err := strconv.Atoi(season)
	if err != nil {
		return "", fmt.Errorf("unparseable league season %q: %w", season, err)
	}
	return strconv.Itoa(year + 1), nil
}
