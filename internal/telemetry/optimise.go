package telemetry

import "math"

const (
	optimiseSeedOffset    = 307
	minReduction          = 0.2
	reductionSpan         = 0.2
	segmentReductionSwing = 0.1
)

// OptimisationPlan is a suggested reduced schedule for a lighting device.
type OptimisationPlan struct {
	EntityID      string    `json:"entity_id"`
	ReductionRate float64   `json:"reduction_rate"`
	RuntimeHours  float64   `json:"runtime_hours"`
	Segments      []Segment `json:"segments,omitempty"`
	Logic         string    `json:"logic"`
}

const (
	logicOff      = "Device is off; nothing to optimise."
	logicDimming  = "Daylight dimming: adjust brightness to natural light, about 30% less energy."
	logicSchedule = "Schedule trimming: switch off outside required windows, about 20% less energy."
	logicHabits   = "Usage habits: follow occupancy patterns, about 15% less energy."
)

// Optimise derives a reduced schedule from a runtime record.
func Optimise(rt RuntimeRecord) OptimisationPlan {
	if !rt.Active || rt.DurationHours == 0 {
		return OptimisationPlan{EntityID: rt.EntityID, Logic: logicOff}
	}
	seq := NewSequence(Seed(rt.EntityID, optimiseSeedOffset))
	rate := seq.Between(minReduction, minReduction+reductionSpan)
	runtime := rt.DurationHours * (1 - rate)

	segs := make([]Segment, len(rt.Segments))
	for i, s := range rt.Segments {
		cut := rate + (seq.Next()-0.5)*segmentReductionSwing
		segs[i] = Segment{Start: s.Start, End: s.End, Hours: math.Max(0, s.Hours*(1-cut))}
	}

	logic := logicHabits
	switch {
	case runtime < rt.DurationHours*0.7:
		logic = logicDimming
	case runtime < rt.DurationHours*0.85:
		logic = logicSchedule
	}
	return OptimisationPlan{
		EntityID:      rt.EntityID,
		ReductionRate: rate,
		RuntimeHours:  runtime,
		Segments:      segs,
		Logic:         logic,
	}
}
