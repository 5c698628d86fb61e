// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the wire and config structs shared across the tool.
package types

// League is the immutable league snapshot fetched once per run.
type League struct {
	// ID is the numeric league identifier from the Sleeper URL.
	ID string `json:"league_id" yaml:"league_id"`

	// Name is the league display name.
	Name string `json:"name" yaml:"name"`

	// Season is the league year as Sleeper reports it (e.g. "2025").
	Season string `json:"season" yaml:"season"`

	// TotalRosters is the number of teams in the league.
	TotalRosters int `json:"total_rosters" yaml:"total_rosters"`

	Status   string         `json:"status" yaml:"status"`
	Settings LeagueSettings `json:"settings" yaml:"settings"`
}

// LeagueSettings carries the subset of league settings the tool reads.
type LeagueSettings struct {
	// DraftRounds is the rookie draft round count, when the league defines one.
	DraftRounds int `json:"draft_rounds" yaml:"draft_rounds"`
}

// Roster is one team's slot in a league: its owner and rostered players.
type Roster struct {
	ID      int      `json:"roster_id" yaml:"roster_id"`
	OwnerID string   `json:"owner_id" yaml:"owner_id"`
	Players []string `json:"players" yaml:"players"`
}

// LeagueUser maps a Sleeper user ID to a display handle.
type LeagueUser struct {
	ID          string `json:"user_id" yaml:"user_id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// TradedPick records a future draft pick that changed hands. RosterID is the
// roster the pick originates from (which fixes its slot); OwnerID is the
// roster that currently holds it.
type TradedPick struct {
	Season          string `json:"season" yaml:"season"`
	Round           int    `json:"round" yaml:"round"`
	RosterID        int    `json:"roster_id" yaml:"roster_id"`
	PreviousOwnerID int    `json:"previous_owner_id" yaml:"previous_owner_id"`
	OwnerID         int    `json:"owner_id" yaml:"owner_id"`
}

// Draft identifies one draft within a league. Sleeper lists drafts newest first.
type Draft struct {
	ID      string `json:"draft_id" yaml:"draft_id"`
	Status  string `json:"status" yaml:"status"`
	Season  string `json:"season" yaml:"season"`
	Created int64  `json:"created" yaml:"created"`
}

// DraftSelection is one pick made in a draft, in selection order.
type DraftSelection struct {
	Round    int               `json:"round" yaml:"round"`
	PickNo   int               `json:"pick_no" yaml:"pick_no"`
	PlayerID string            `json:"player_id" yaml:"player_id"`
	PickedBy string            `json:"picked_by" yaml:"picked_by"`
	RosterID int               `json:"roster_id" yaml:"roster_id"`
	Metadata SelectionMetadata `json:"metadata" yaml:"metadata"`
}

// SelectionMetadata is the player metadata Sleeper embeds in a draft pick.
type SelectionMetadata struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Position  string `json:"position" yaml:"position"`
}

// Player is one entry from the NFL player catalog.
type Player struct {
	ID        string `json:"player_id" yaml:"player_id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Position  string `json:"position" yaml:"position"`
	Team      string `json:"team" yaml:"team"`
	Status    string `json:"status" yaml:"status"`
}

// FullName joins the player's first and last names.
func (p Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
