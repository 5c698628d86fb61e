// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

const timestampLayout = "2006-01-02 15:04:05"

// RenderText writes the roster-mode report as the canonical text block:
// title, timestamp, one line per pick, a separator after each round.
func RenderText(r *types.Report, w io.Writer) {
	fmt.Fprintf(w, "**%s Rookie Pick Tracker: %s**\n", r.Season, r.LeagueName)
	fmt.Fprintf(w, "*Last Updated: %s*\n", r.GeneratedAt.Format(timestampLayout))
	fmt.Fprintln(w, "---")

	lastRound := 0
	for _, line := range r.Lines {
		if lastRound != 0 && line.Round != lastRound {
			fmt.Fprintln(w, "---")
		}
		lastRound = line.Round

		fmt.Fprintf(w, "Pick %s @%s %s\n", line.Label(), line.Owner, kickerNote(line))
	}
	if len(r.Lines) > 0 {
		fmt.Fprintln(w, "---")
	}
}

func kickerNote(line types.PickLine) string {
	var b strings.Builder
	if line.Kicker == "" {
		b.WriteString("(no kicker)")
	} else {
		fmt.Fprintf(&b, "(via %s", line.Kicker)
		if line.ExtraKickers > 0 {
			fmt.Fprintf(&b, ", +%d more", line.ExtraKickers)
		}
		b.WriteString(")")
	}
	if line.Traded {
		b.WriteString(" [traded]")
	}
	return b.String()
}

// RenderScanText writes the draft-scan report in the classic tracker
// format: sequential pick lines, a separator when a round fills, and a
// footer once the pick pool runs low or out.
func RenderScanText(r types.ScanReport, w io.Writer) {
	fmt.Fprintf(w, "**%s Rookie Pick Tracker: %s**\n", r.Season, r.LeagueName)
	fmt.Fprintf(w, "*Last Updated: %s*\n", r.GeneratedAt.Format(timestampLayout))
	fmt.Fprintln(w, "---")

	for i, line := range r.Lines {
		fmt.Fprintf(w, "Pick %s @%s (via %s)\n", line.Label(), line.Owner, line.Kicker)
		if (i+1)%r.Teams == 0 {
			fmt.Fprintln(w, "---")
		}
	}
	fmt.Fprintln(w)

	remaining := r.Remaining()
	rounds := 0
	if r.Teams > 0 {
		rounds = r.MaxPicks / r.Teams
	}
	switch {
	case remaining <= 0:
		fmt.Fprintf(w, "**Rookie draft picking complete: All %d rounds assigned.**\n", rounds)
	case remaining <= r.LowRemaining:
		fmt.Fprintf(w, "**Only %d rookie picks remaining.**\n", remaining)
	}
}

// RenderJSON writes v as indented JSON to w.
func RenderJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderYAML writes v as YAML to w.
func RenderYAML(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}
