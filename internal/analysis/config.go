package analysis

import "math"

// Defaults mirror the historical study parameters. Callers copy them
// into their own run parameters rather than mutating these.
var (
	DefaultDrawEdges = []float64{0, 2.25, 2.5, 2.75, 3.0, 3.25, 3.5, 4.0, 5.0, 6.0, math.Inf(1)}
	DefaultHomeEdges = []float64{0, 1.4, 1.6, 1.8, 2.0, 2.25, 2.5, 3.0, 4.0, 5.0, math.Inf(1)}

	DefaultBlockSizes  = []int{10, 50, 100, 200}
	DefaultWindowSizes = []int{10, 25, 50, 75, 100, 125, 150, 175, 200, 250, 300, 400, 500}
)

const (
	// DefaultMinSamples is the minimum bin size for the reliable flag.
	DefaultMinSamples = 30
	// DefaultStake is the stake per pick in P&L units.
	DefaultStake = 1.0
	// DefaultTopN is how many top-EV bins the summaries list.
	DefaultTopN = 5
)
