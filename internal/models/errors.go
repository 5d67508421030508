package models

import "errors"

// Custom errors
var (
	ErrNoOutcomeColumn  = errors.New("no result column found or inferrable from goals")
	ErrNoDrawOddsColumn = errors.New("no draw-odds column detected; cannot compute EV for draws")
	ErrEmptyTable       = errors.New("table contains no rows")
	ErrInvalidEdges     = errors.New("invalid bin edges")
)
