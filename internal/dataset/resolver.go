package dataset

import (
	"fmt"
	"strings"

	"github.com/yourusername/draw-value/internal/models"
)

// Ordered exact-match candidates tried before any keyword heuristics.
// Kept as named data so schema coverage is testable and extensible.
var (
	resultColumnCandidates = []string{"ftr", "result", "res", "full_time_result", "ft_result", "outcome"}
	homeGoalsCandidates    = []string{"fthg", "home_goals", "goals_home", "home_ft_goals", "hg"}
	awayGoalsCandidates    = []string{"ftag", "away_goals", "goals_away", "away_ft_goals", "ag"}

	drawOddsCandidates = []string{"b365d", "draw_odds", "odds_draw", "odd_d", "odds_d"}
	homeOddsCandidates = []string{"b365h", "home_odds", "odds_home", "odd_h", "odds_h"}
	awayOddsCandidates = []string{"b365a", "away_odds", "odds_away", "odd_a", "odds_a"}

	drawOddsKeywords = []string{"draw", "b365", "pin", "odd"}
	homeOddsKeywords = []string{"home", "b365", "pin", "odd", "1"}
	awayOddsKeywords = []string{"away", "b365", "pin", "odd", "2"}
)

// Schema maps a table's columns to the canonical roles. HomeOdds and
// AwayOdds are empty when no matching column exists; DrawOdds is
// always set on a successfully resolved schema.
type Schema struct {
	ResultColumn string // empty when the outcome is derived from goals
	HomeGoals    string
	AwayGoals    string
	DrawOdds     string
	HomeOdds     string
	AwayOdds     string
}

// Derived reports whether outcomes come from goal comparison rather
// than a result column.
func (s Schema) Derived() bool {
	return s.ResultColumn == "" && s.HomeGoals != "" && s.AwayGoals != ""
}

// Resolve inspects a table and maps its heterogeneous column names to
// the canonical roles. It is a pure function of the table's schema and
// values.
func Resolve(t *Table) (Schema, error) {
	schema := Schema{}

	if col, ok := detectResultColumn(t); ok {
		schema.ResultColumn = col
	} else if gh, ga, ok := detectGoalColumns(t); ok {
		schema.HomeGoals = gh
		schema.AwayGoals = ga
	} else {
		return Schema{}, fmt.Errorf("%s: %w", t.Name(), models.ErrNoOutcomeColumn)
	}

	schema.DrawOdds = detectOddsColumn(t, drawOddsCandidates, drawOddsKeywords)
	if schema.DrawOdds == "" {
		return Schema{}, fmt.Errorf("%s: %w", t.Name(), models.ErrNoDrawOddsColumn)
	}
	schema.HomeOdds = detectOddsColumn(t, homeOddsCandidates, homeOddsKeywords)
	schema.AwayOdds = detectOddsColumn(t, awayOddsCandidates, awayOddsKeywords)

	return schema, nil
}

// Records materializes match records from a resolved table. Rows whose
// outcome cannot be classified are dropped, never guessed. Missing
// odds cells survive as nil pointers for local filtering downstream.
func Records(t *Table, schema Schema) []models.MatchRecord {
	outcomes := outcomes(t, schema)
	drawOdds := t.Floats(schema.DrawOdds)
	var homeOdds, awayOdds []NullFloat64
	if schema.HomeOdds != "" {
		homeOdds = t.Floats(schema.HomeOdds)
	}
	if schema.AwayOdds != "" {
		awayOdds = t.Floats(schema.AwayOdds)
	}

	records := make([]models.MatchRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if outcomes[i] == models.OutcomeUnknown {
			continue
		}
		record := models.MatchRecord{Outcome: outcomes[i]}
		record.DrawOdds = optional(drawOdds, i)
		record.HomeOdds = optional(homeOdds, i)
		record.AwayOdds = optional(awayOdds, i)
		records = append(records, record)
	}
	return records
}

func outcomes(t *Table, schema Schema) []models.Outcome {
	if schema.ResultColumn != "" {
		raw := t.Strings(schema.ResultColumn)
		result := make([]models.Outcome, len(raw))
		for i, v := range raw {
			result[i] = models.ClassifyOutcome(v)
		}
		return result
	}

	home := t.Floats(schema.HomeGoals)
	away := t.Floats(schema.AwayGoals)
	result := make([]models.Outcome, t.Len())
	for i := range result {
		if !home[i].Valid || !away[i].Valid {
			result[i] = models.OutcomeUnknown
			continue
		}
		switch {
		case home[i].Float64 > away[i].Float64:
			result[i] = models.OutcomeHome
		case home[i].Float64 < away[i].Float64:
			result[i] = models.OutcomeAway
		default:
			result[i] = models.OutcomeDraw
		}
	}
	return result
}

func detectResultColumn(t *Table) (string, bool) {
	for _, candidate := range resultColumnCandidates {
		if !t.HasColumn(candidate) {
			continue
		}
		for _, v := range t.Strings(candidate) {
			if models.ClassifyOutcome(v) != models.OutcomeUnknown {
				return candidate, true
			}
		}
	}
	return "", false
}

func detectGoalColumns(t *Table) (string, string, bool) {
	gh := firstPresent(t, homeGoalsCandidates)
	ga := firstPresent(t, awayGoalsCandidates)
	if gh == "" || ga == "" {
		return "", "", false
	}
	return gh, ga, true
}

func detectOddsColumn(t *Table, priority []string, keywords []string) string {
	for _, candidate := range priority {
		if t.HasColumn(candidate) && t.IsNumeric(candidate) {
			return candidate
		}
	}
	for _, col := range t.Columns() {
		if !t.IsNumeric(col) {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(col, keyword) {
				return col
			}
		}
	}
	return ""
}

func firstPresent(t *Table, candidates []string) string {
	for _, candidate := range candidates {
		if t.HasColumn(candidate) {
			return candidate
		}
	}
	return ""
}

func optional(values []NullFloat64, i int) *float64 {
	if values == nil || i >= len(values) || !values[i].Valid {
		return nil
	}
	v := values[i].Float64
	return &v
}
