// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a local SQLite copy of the Sleeper NFL player
// set. The upstream payload is several megabytes, so it is fetched at most
// once per staleness window and queried locally after that.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

const dbFile = "players.db"

// metaFetchedAt is the bookkeeping key recording the last refresh time.
const metaFetchedAt = "fetched_at"

// kickerPositions are the roster positions that count as a kicker slot.
// Punters qualify; some leagues roster them in the K slot.
var kickerPositions = []string{"K", "P"}

// Store is the SQLite-backed player catalog.
type Store struct {
	db     *sql.DB
	maxAge time.Duration
}

// NewStore opens or creates the catalog database at cfg.Dir/players.db,
// creating the schema if it does not exist. A zero MaxAge defaults to 24h.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}

	s := &Store{db: db, maxAge: maxAge}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			first_name TEXT,
			last_name TEXT,
			position TEXT,
			team TEXT,
			status TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_position ON players(position)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// LastFetched returns when the catalog was last refreshed, or the zero
// time when it never was.
func (s *Store) LastFetched(ctx context.Context) (time.Time, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM meta WHERE key = ?`, metaFetchedAt,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading fetch time: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing fetch time %q: %w", value, err)
	}
	return t, nil
}

// Stale reports whether the catalog needs a refresh: never fetched, or
// fetched longer ago than the staleness window.
func (s *Store) Stale(ctx context.Context) (bool, error) {
	fetched, err := s.LastFetched(ctx)
	if err != nil {
		return false, err
	}
	if fetched.IsZero() {
		return true, nil
	}
	return time.Since(fetched) > s.maxAge, nil
}

// Replace swaps the full player set in one transaction and records the
// refresh time.
func (s *Store) Replace(ctx context.Context, players map[string]types.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("clearing players: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO players (id, first_name, last_name, position, team, status)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for id, p := range players {
		if p.ID == "" {
			p.ID = id
		}
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.FirstName, p.LastName, p.Position, p.Team, p.Status,
		); err != nil {
			return fmt.Errorf("inserting player %s: %w", p.ID, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		metaFetchedAt, now,
	); err != nil {
		return fmt.Errorf("updating fetch time: %w", err)
	}

	return tx.Commit()
}

// Count returns the number of catalogued players.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting players: %w", err)
	}
	return n, nil
}

// EnsureFresh refreshes the catalog through fetch when it is stale,
// reporting progress to w. A fresh catalog is left untouched.
func (s *Store) EnsureFresh(ctx context.Context, fetch func(context.Context) (map[string]types.Player, error), w io.Writer) error {
	stale, err := s.Stale(ctx)
	if err != nil {
		return err
	}
	if !stale {
		return nil
	}

	fmt.Fprintln(w, "Fetching fresh player data from Sleeper (this may take a moment)...")
	players, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("refreshing player catalog: %w", err)
	}
	if err := s.Replace(ctx, players); err != nil {
		return err
	}
	fmt.Fprintf(w, "Player catalog refreshed: %d players.\n", len(players))
	return nil
}

// Position returns a player's position. The second return value is false
// when the player is not in the catalog.
func (s *Store) Position(ctx context.Context, playerID string) (string, bool, error) {
	var pos string
	err := s.db.QueryRowContext(ctx,
		`SELECT position FROM players WHERE id = ?`, playerID,
	).Scan(&pos)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("looking up player %s: %w", playerID, err)
	}
	return pos, true, nil
}

// KickersAmong returns the kickers within the given player IDs, ordered by
// player ID so repeated calls are deterministic.
func (s *Store) KickersAmong(ctx context.Context, playerIDs []string) ([]types.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	var qb strings.Builder
	qb.WriteString(
		`SELECT id, first_name, last_name, position, team, status
		 FROM players WHERE position IN (`)
	args := make([]any, 0, len(kickerPositions)+len(playerIDs))
	for i, pos := range kickerPositions {
		if i > 0 {
			qb.WriteString(", ")
		}
		qb.WriteString("?")
		args = append(args, pos)
	}
	qb.WriteString(`) AND id IN (`)
	for i, id := range playerIDs {
		if i > 0 {
			qb.WriteString(", ")
		}
		qb.WriteString("?")
		args = append(args, id)
	}
	qb.WriteString(`) ORDER BY id`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying kickers: %w", err)
	}
	defer rows.Close()

	var kickers []types.Player
	for rows.Next() {
		var p types.Player
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Position, &p.Team, &p.Status); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		kickers = append(kickers, p)
	}
	return kickers, rows.Err()
}
