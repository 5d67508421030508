package analysis

import "sort"

// YieldSummary describes a sequence of per-block or per-window yields.
type YieldSummary struct {
	Count         int
	Mean          float64
	Median        float64
	Max           float64
	Min           float64
	PositiveShare float64 // fraction of yields strictly above zero
}

// ChunkYields splits the P&L sequence into consecutive non-overlapping
// blocks of blockSize picks and returns the yield of each full block.
// A trailing partial block is discarded.
func ChunkYields(pnls []float64, blockSize int) []float64 {
	if blockSize <= 0 {
		return nil
	}
	blocks := len(pnls) / blockSize
	yields := make([]float64, 0, blocks)
	for i := 0; i < blocks; i++ {
		sum := 0.0
		for _, pnl := range pnls[i*blockSize : (i+1)*blockSize] {
			sum += pnl
		}
		yields = append(yields, sum/float64(blockSize))
	}
	return yields
}

// RollingYields returns one yield per contiguous window of the given
// size, overlapping, computed via prefix sums. A sequence shorter than
// the window produces an empty result.
func RollingYields(pnls []float64, window int) []float64 {
	if window <= 0 || len(pnls) < window {
		return []float64{}
	}
	prefix := make([]float64, len(pnls)+1)
	for i, pnl := range pnls {
		prefix[i+1] = prefix[i] + pnl
	}
	yields := make([]float64, 0, len(pnls)-window+1)
	for i := window; i <= len(pnls); i++ {
		yields = append(yields, (prefix[i]-prefix[i-window])/float64(window))
	}
	return yields
}

// SummarizeYields computes the descriptive statistics over a yield
// sequence. An empty sequence yields a zero-valued summary with Count 0.
func SummarizeYields(yields []float64) YieldSummary {
	summary := YieldSummary{Count: len(yields)}
	if len(yields) == 0 {
		return summary
	}

	sorted := append([]float64{}, yields...)
	sort.Float64s(sorted)

	sum := 0.0
	positive := 0
	for _, y := range yields {
		sum += y
		if y > 0 {
			positive++
		}
	}
	summary.Mean = sum / float64(len(yields))
	summary.Median = median(sorted)
	summary.Min = sorted[0]
	summary.Max = sorted[len(sorted)-1]
	summary.PositiveShare = float64(positive) / float64(len(yields))
	return summary
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
