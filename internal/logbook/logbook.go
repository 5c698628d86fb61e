// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logbook appends generated reports to a per-league log file and
// keeps a YAML sidecar describing the last run.
package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

// Meta describes the most recent append for a league, written alongside
// the log as <league>_meta.yaml.
type Meta struct {
	LeagueID    string    `yaml:"league_id" json:"league_id"`
	LeagueName  string    `yaml:"league_name" json:"league_name"`
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`
	Lines       int       `yaml:"lines" json:"lines"`
}

// Append writes text plus a trailing newline to dir/<league name>_log.txt,
// creating the directory on demand. It returns the log file path.
func Append(cfg types.LogbookConfig, leagueName, text string) (string, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, sanitize(leagueName)+"_log.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text + "\n"); err != nil {
		return "", fmt.Errorf("appending to %s: %w", path, err)
	}
	return path, nil
}

// WriteMeta replaces the league's sidecar metadata file.
func WriteMeta(cfg types.LogbookConfig, meta Meta) error {
	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling log metadata: %w", err)
	}

	path := filepath.Join(dir, sanitize(meta.LeagueName)+"_meta.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadMeta loads the league's sidecar metadata. Missing files surface as
// os.ErrNotExist so callers can treat a first run specially.
func ReadMeta(cfg types.LogbookConfig, leagueName string) (Meta, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "logs"
	}
	path := filepath.Join(dir, sanitize(leagueName)+"_meta.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, err
	}
	var meta Meta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return Meta{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return meta, nil
}

// sanitize makes a league name safe as a file name component. League names
// are user-entered and may carry path separators.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "league"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		default:
			return r
		}
	}, name)
}
