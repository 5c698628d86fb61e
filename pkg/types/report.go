// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// PickLine is one rendered pick in a roster-mode report: the slot, the user
// who currently owns it, and the kicker whose roster the slot originates from.
type PickLine struct {
	// Season is the rookie draft year the pick belongs to.
	Season string `json:"season" yaml:"season"`

	Round int `json:"round" yaml:"round"`
	Slot  int `json:"slot" yaml:"slot"`

	// Owner is the display name of the user holding the pick right now.
	Owner string `json:"owner" yaml:"owner"`

	// Kicker is the kicker on the pick's originating roster, empty when
	// the roster carries none.
	Kicker string `json:"kicker,omitempty" yaml:"kicker,omitempty"`

	// ExtraKickers counts kickers beyond the one reported, for rosters
	// carrying more than one.
	ExtraKickers int `json:"extra_kickers,omitempty" yaml:"extra_kickers,omitempty"`

	// Traded reports whether the pick sits with a roster other than its origin.
	Traded bool `json:"traded,omitempty" yaml:"traded,omitempty"`
}

// Label formats the pick position as "round.slot" with a two-digit slot.
func (l PickLine) Label() string {
	return fmt.Sprintf("%d.%02d", l.Round, l.Slot)
}

// Report is the full roster-mode output: a pure function of the snapshot
// it was built from, ordered ascending by (round, slot).
type Report struct {
	LeagueID    string     `json:"league_id" yaml:"league_id"`
	LeagueName  string     `json:"league_name" yaml:"league_name"`
	Season      string     `json:"season" yaml:"season"`
	GeneratedAt time.Time  `json:"generated_at" yaml:"generated_at"`
	Lines       []PickLine `json:"lines" yaml:"lines"`
}

// ScanLine is one kicker selection in draft-scan mode, in selection order.
type ScanLine struct {
	Round int `json:"round" yaml:"round"`
	Slot  int `json:"slot" yaml:"slot"`

	// Owner is the display name of the drafting user.
	Owner string `json:"owner" yaml:"owner"`

	// Kicker is the name of the kicker selected with this pick.
	Kicker string `json:"kicker" yaml:"kicker"`
}

// Label formats the scan position as "round.slot" with a two-digit slot.
func (l ScanLine) Label() string {
	return fmt.Sprintf("%d.%02d", l.Round, l.Slot)
}

// ScanReport is the draft-scan output.
type ScanReport struct {
	LeagueName   string     `json:"league_name" yaml:"league_name"`
	DraftID      string     `json:"draft_id" yaml:"draft_id"`
	Season       string     `json:"season" yaml:"season"`
	GeneratedAt  time.Time  `json:"generated_at" yaml:"generated_at"`
	Teams        int        `json:"teams" yaml:"teams"`
	MaxPicks     int        `json:"max_picks" yaml:"max_picks"`
	LowRemaining int        `json:"low_remaining" yaml:"low_remaining"`
	Lines        []ScanLine `json:"lines" yaml:"lines"`
}

// Remaining returns how many picks are still unassigned.
func (r ScanReport) Remaining() int {
	return r.MaxPicks - len(r.Lines)
}
