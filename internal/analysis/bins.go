// Package analysis implements the draw-value statistics engine:
// odds partitions, per-bin aggregation with Wilson intervals and EV,
// and the threshold/window backtest sweeps.
package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yourusername/draw-value/internal/models"
)

// Partition is an ordered, inf-terminated sequence of bin edges with
// one generated label per bin. Immutable after construction.
type Partition struct {
	edges  []float64
	labels []string
}

// ParseEdges parses a comma-separated edge list. Empty or whitespace
// input falls back to the defaults. The tokens inf, +inf and infinity
// are accepted; any other non-numeric token is an error.
func ParseEdges(s string, defaults []float64) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return append([]float64{}, defaults...), nil
	}
	edges := []float64{}
	for _, part := range strings.Split(s, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		switch token {
		case "inf", "+inf", "infinity":
			edges = append(edges, math.Inf(1))
		default:
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", models.ErrInvalidEdges, token)
			}
			edges = append(edges, v)
		}
	}
	if len(edges) == 0 {
		return append([]float64{}, defaults...), nil
	}
	return edges, nil
}

// NewPartition builds a validated partition from a list of edges.
// A leading 0 is prepended when the first edge is positive and +Inf is
// appended when missing, so the result always spans [0, +Inf).
func NewPartition(edges []float64) (Partition, error) {
	if len(edges) == 0 {
		return Partition{}, fmt.Errorf("%w: no edges supplied", models.ErrInvalidEdges)
	}
	normalized := append([]float64{}, edges...)
	if normalized[0] > 0 {
		normalized = append([]float64{0}, normalized...)
	}
	if !math.IsInf(normalized[len(normalized)-1], 1) {
		normalized = append(normalized, math.Inf(1))
	}
	for i := 1; i < len(normalized); i++ {
		if normalized[i] <= normalized[i-1] {
			return Partition{}, fmt.Errorf("%w: edges must be strictly increasing", models.ErrInvalidEdges)
		}
	}
	return Partition{edges: normalized, labels: labelsFromEdges(normalized)}, nil
}

// Edges returns the validated edge sequence.
func (p Partition) Edges() []float64 { return p.edges }

// Labels returns one label per bin.
func (p Partition) Labels() []string { return p.labels }

// Bins returns the number of bins.
func (p Partition) Bins() int {
	if len(p.edges) == 0 {
		return 0
	}
	return len(p.edges) - 1
}

// Locate returns the bin index of a value. Bins are right-closed and
// left-open; the first bin is closed on both ends so zero-valued inputs
// are included. Values below the first edge return -1.
func (p Partition) Locate(v float64) int {
	if len(p.edges) < 2 || v < p.edges[0] {
		return -1
	}
	if v == p.edges[0] {
		return 0
	}
	for i := 1; i < len(p.edges); i++ {
		if v <= p.edges[i] {
			return i - 1
		}
	}
	return -1
}

func labelsFromEdges(edges []float64) []string {
	labels := make([]string, 0, len(edges)-1)
	for i := 0; i < len(edges)-1; i++ {
		lo, hi := edges[i], edges[i+1]
		switch {
		case lo == 0 && !math.IsInf(hi, 1):
			labels = append(labels, fmt.Sprintf("≤%.2f", hi))
		case math.IsInf(hi, 1):
			labels = append(labels, fmt.Sprintf(">%.2f", lo))
		default:
			labels = append(labels, fmt.Sprintf("%.2f–%.2f", lo, hi))
		}
	}
	return labels
}
