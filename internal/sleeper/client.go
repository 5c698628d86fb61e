// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sleeper is a read-only client for the Sleeper fantasy API.
package sleeper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qubone/kicker-to-pick/internal/httputil"
	"github.com/qubone/kicker-to-pick/pkg/types"
)

// apiBase is the Sleeper API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.sleeper.app"

// ErrNotFound reports an unknown league, draft, or other resource.
// Sleeper answers both with HTTP 404 and with a JSON null body on a 200,
// depending on the endpoint; the client maps both to this error.
var ErrNotFound = errors.New("not found")

// ErrUpstream reports that Sleeper was unreachable or answered with a
// malformed or unexpected payload.
var ErrUpstream = errors.New("upstream error")

// Client fetches league, roster, user, draft, and player data from Sleeper.
type Client struct {
	http *http.Client
	cfg  types.SleeperConfig
}

// NewClient returns a Client using cfg. A zero timeout defaults to 30s.
func NewClient(cfg types.SleeperConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		cfg:  cfg,
	}
}

// League fetches the league snapshot for id.
func (c *Client) League(ctx context.Context, id string) (*types.League, error) {
	var league types.League
	if err := c.getJSON(ctx, "/v1/league/"+id, &league); err != nil {
		return nil, fmt.Errorf("league %s: %w", id, err)
	}
	return &league, nil
}

// Rosters fetches the rosters of a league.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]types.Roster, error) {
	var rosters []types.Roster
	if err := c.getJSON(ctx, "/v1/league/"+leagueID+"/rosters", &rosters); err != nil {
		return nil, fmt.Errorf("rosters for league %s: %w", leagueID, err)
	}
	return rosters, nil
}

// Users fetches the league members.
func (c *Client) Users(ctx context.Context, leagueID string) ([]types.LeagueUser, error) {
	var users []types.LeagueUser
	if err := c.getJSON(ctx, "/v1/league/"+leagueID+"/users", &users); err != nil {
		return nil, fmt.Errorf("users for league %s: %w", leagueID, err)
	}
	return users, nil
}

// TradedPicks fetches every future draft pick of the league that has
// changed hands.
func (c *Client) TradedPicks(ctx context.Context, leagueID string) ([]types.TradedPick, error) {
	var picks []types.TradedPick
	if err := c.getJSON(ctx, "/v1/league/"+leagueID+"/traded_picks", &picks); err != nil {
		return nil, fmt.Errorf("traded picks for league %s: %w", leagueID, err)
	}
	return picks, nil
}

// Drafts fetches the drafts of a league, newest first.
func (c *Client) Drafts(ctx context.Context, leagueID string) ([]types.Draft, error) {
	var drafts []types.Draft
	if err := c.getJSON(ctx, "/v1/league/"+leagueID+"/drafts", &drafts); err != nil {
		return nil, fmt.Errorf("drafts for league %s: %w", leagueID, err)
	}
	return drafts, nil
}

// LatestDraft resolves the most recent draft of a league. It returns
// ErrNotFound when the league has no drafts.
func (c *Client) LatestDraft(ctx context.Context, leagueID string) (*types.Draft, error) {
	drafts, err := c.Drafts(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("drafts for league %s: %w", leagueID, ErrNotFound)
	}
	return &drafts[0], nil
}

// DraftPicks fetches the selections of a draft in pick order.
func (c *Client) DraftPicks(ctx context.Context, draftID string) ([]types.DraftSelection, error) {
	var picks []types.DraftSelection
	if err := c.getJSON(ctx, "/v1/draft/"+draftID+"/picks", &picks); err != nil {
		return nil, fmt.Errorf("picks for draft %s: %w", draftID, err)
	}
	return picks, nil
}

// AllPlayers fetches the full NFL player catalog keyed by player ID.
// The payload is several megabytes; callers should cache it.
func (c *Client) AllPlayers(ctx context.Context) (map[string]types.Player, error) {
	var players map[string]types.Player
	if err := c.getJSON(ctx, "/v1/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("nfl players: %w", err)
	}
	return players, nil
}

// getJSON fetches path relative to the API base and decodes the body into v.
// A 404 status or a literal null body maps to ErrNotFound.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("sleeper API request: %w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: sleeper API returned HTTP %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", ErrUpstream, err)
	}

	if isJSONNull(body) {
		return ErrNotFound
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: parsing sleeper response: %w", ErrUpstream, err)
	}
	return nil
}

func isJSONNull(body []byte) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}
