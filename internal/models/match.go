package models

import "strings"

// Outcome represents the full-time result of a match
type Outcome string

const (
	OutcomeHome    Outcome = "H"
	OutcomeDraw    Outcome = "D"
	OutcomeAway    Outcome = "A"
	OutcomeUnknown Outcome = ""
)

// MatchRecord represents one historical match with bookmaker odds.
// Odds pointers are nil when the source column is absent or the cell
// is missing; aggregations filter explicitly instead of imputing.
type MatchRecord struct {
	Outcome  Outcome  `json:"outcome"`
	HomeOdds *float64 `json:"home_odds"`
	DrawOdds *float64 `json:"draw_odds"`
	AwayOdds *float64 `json:"away_odds"`
}

// ClassifyOutcome maps a raw result token to an Outcome. It accepts
// letter codes (H/D/A), words (HOME/DRAW/AWAY) and 1X2 codes,
// case-insensitively. Anything else is OutcomeUnknown.
func ClassifyOutcome(raw string) Outcome {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "D", "DRAW", "X":
		return OutcomeDraw
	case "H", "HOME", "1":
		return OutcomeHome
	case "A", "AWAY", "2":
		return OutcomeAway
	default:
		return OutcomeUnknown
	}
}

// DrawFlag returns the binary draw indicator for the outcome. The
// second return value is false for unclassifiable outcomes.
func (o Outcome) DrawFlag() (float64, bool) {
	switch o {
	case OutcomeDraw:
		return 1.0, true
	case OutcomeHome, OutcomeAway:
		return 0.0, true
	default:
		return 0, false
	}
}

// IsDraw reports whether the match finished level.
func (o Outcome) IsDraw() bool {
	return o == OutcomeDraw
}

// HasOdds reports whether every odds column the caller needs is present.
func (m MatchRecord) HasOdds(home, draw, away bool) bool {
	if home && m.HomeOdds == nil {
		return false
	}
	if draw && m.DrawOdds == nil {
		return false
	}
	if away && m.AwayOdds == nil {
		return false
	}
	return true
}
