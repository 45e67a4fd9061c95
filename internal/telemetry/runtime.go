package telemetry

import "math"

const (
	minRuntimeHours   = 1.0
	runtimeSpanHours  = 7.0
	segmentTolerance  = 0.01
	segmentSeedOffset = 101
)

// Window is a fixed wall-clock slot of the lighting day template.
type Window struct {
	Start    string
	End      string
	Capacity float64
}

// DayTemplate is the morning / afternoon / evening split used for lighting.
var DayTemplate = [3]Window{
	{Start: "08:00", End: "12:00", Capacity: 4},
	{Start: "14:00", End: "18:00", Capacity: 4},
	{Start: "19:00", End: "22:00", Capacity: 3},
}

// Segment is the share of a day's runtime placed in one template window.
type Segment struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Hours float64 `json:"hours"`
}

// RuntimeRecord describes how long a device ran today and when.
// An off device has Active=false and no segments.
type RuntimeRecord struct {
	EntityID      string    `json:"entity_id"`
	Active        bool      `json:"active"`
	DurationHours float64   `json:"duration_hours"`
	Segments      []Segment `json:"segments,omitempty"`
	HourLabels    []string  `json:"hour_labels,omitempty"`
}

// SegmentHours sums the hours across segments.
func (r RuntimeRecord) SegmentHours() float64 {
	total := 0.0
	for _, s := range r.Segments {
		total += s.Hours
	}
	return total
}

// Off returns the same record as seen while the device is switched off.
func (r RuntimeRecord) Off() RuntimeRecord {
	return RuntimeRecord{EntityID: r.EntityID}
}

// AssignRuntime derives the runtime record for entityID.
func AssignRuntime(entityID string, on bool) RuntimeRecord {
	if !on {
		return RuntimeRecord{EntityID: entityID}
	}
	p := Scalar(entityID, 0)
	duration := p*runtimeSpanHours + minRuntimeHours
	return RuntimeRecord{
		EntityID:      entityID,
		Active:        true,
		DurationHours: duration,
		Segments:      splitIntoWindows(duration, NewSequence(Seed(entityID, segmentSeedOffset))),
		HourLabels:    hourLabels(duration, p),
	}
}

// splitIntoWindows greedily distributes duration over DayTemplate so the
// total matches duration within segmentTolerance.
func splitIntoWindows(duration float64, seq *Sequence) []Segment {
	out := make([]Segment, len(DayTemplate))
	remaining := duration
	last := len(DayTemplate) - 1
	for i := 0; i < last; i++ {
		laterCapacity := 0.0
		for _, w := range DayTemplate[i+1:] {
			laterCapacity += w.Capacity
		}
		hi := math.Min(remaining, DayTemplate[i].Capacity)
		lo := math.Max(0, remaining-laterCapacity)
		hours := math.Max(0, math.Min(seq.Between(lo, hi), remaining))
		out[i] = Segment{Start: DayTemplate[i].Start, End: DayTemplate[i].End, Hours: hours}
		remaining = math.Max(0, remaining-hours)
	}
	out[last] = Segment{Start: DayTemplate[last].Start, End: DayTemplate[last].End, Hours: remaining}

	sum := 0.0
	for _, s := range out {
		sum += s.Hours
	}
	if diff := duration - sum; math.Abs(diff) > segmentTolerance {
		out[last].Hours += diff
	}
	return out
}

// hourLabels lists the consecutive hours an AC unit ran, starting at a
// position derived from p and wrapping past midnight.
func hourLabels(duration, p float64) []string {
	start := int(math.Floor(p * (24 - duration)))
	n := int(math.Ceil(duration))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, HourLabel(start+i))
	}
	return out
}
