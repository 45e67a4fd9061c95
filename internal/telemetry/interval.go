package telemetry

import (
	"fmt"
	"sort"
)

// Interval is a wall-clock span in fractional hours of one day.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewInterval validates 0 <= start <= end <= 24.
func NewInterval(start, end float64) (Interval, error) {
	if start < 0 || end > 24 || start > end {
		return Interval{}, fmt.Errorf("interval [%.2f, %.2f]: %w", start, end, ErrInvalidInterval)
	}
	return Interval{Start: start, End: end}, nil
}

// Hours is the interval's length.
func (iv Interval) Hours() float64 {
	return iv.End - iv.Start
}

// MergeIntervals returns the union of in as sorted, pairwise disjoint
// intervals. Touching intervals are merged. The input is not modified.
func MergeIntervals(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.Start <= cur.End {
			if iv.End > cur.End {
				cur.End = iv.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	return append(merged, cur)
}

// UnionDuration is the total length covered by in.
func UnionDuration(in []Interval) float64 {
	total := 0.0
	for _, iv := range MergeIntervals(in) {
		total += iv.Hours()
	}
	return total
}
