package telemetry

import (
	"fmt"
	"math"
)

// FaultCategory classifies a device's synthetic fault.
type FaultCategory string

const (
	FaultNone                FaultCategory = "none"
	FaultNoCooling           FaultCategory = "noCooling"
	FaultPowerOverload       FaultCategory = "powerOverload"
	FaultTemperatureAbnormal FaultCategory = "temperatureAbnormal"
	FaultOperationAbnormal   FaultCategory = "operationAbnormal"
)

// faultyCategories is indexed by seed mod 4.
var faultyCategories = [4]FaultCategory{
	FaultNoCooling,
	FaultPowerOverload,
	FaultTemperatureAbnormal,
	FaultOperationAbnormal,
}

// Fault probabilities by position in the enumeration.
const (
	probFirst            = 0.6
	probSecondAfterFault = 0.3
	probSecondUnknown    = 0.5
	probRest             = 0.2
	probSmallEnumeration = 0.3

	historyHours      = 24
	historyHourStride = 17
)

// severityBand is the [lo, lo+width) range hourly samples are drawn from.
type severityBand struct {
	lo, width float64
}

var severityBands = map[FaultCategory]severityBand{
	FaultNone:                {0, 20},
	FaultNoCooling:           {60, 40},
	FaultPowerOverload:       {70, 30},
	FaultTemperatureAbnormal: {50, 40},
	FaultOperationAbnormal:   {40, 40},
}

// Label returns a display name for the category.
func (c FaultCategory) Label() string {
	switch c {
	case FaultNone:
		return "Normal"
	case FaultNoCooling:
		return "No cooling"
	case FaultPowerOverload:
		return "Power overload"
	case FaultTemperatureAbnormal:
		return "Temperature abnormal"
	case FaultOperationAbnormal:
		return "Operation abnormal"
	default:
		return "Unknown"
	}
}

// Faulty reports whether c is anything other than FaultNone.
func (c FaultCategory) Faulty() bool {
	return c != FaultNone && c != ""
}

// SeveritySample is one hourly point of a fault history.
type SeveritySample struct {
	Hour  string `json:"time"`
	Value int    `json:"value"`
}

// FaultRecord is the immutable fault state of one device.
type FaultRecord struct {
	EntityID string           `json:"entity_id"`
	Category FaultCategory    `json:"category"`
	Severity int              `json:"severity"`
	History  []SeveritySample `json:"history"`
}

// Predecessor carries what the caller knows about ordinal 0 when assigning
// ordinal 1. The zero value means unknown.
type Predecessor struct {
	category FaultCategory
	known    bool
}

// UnknownPredecessor is the zero Predecessor.
var UnknownPredecessor = Predecessor{}

// KnownPredecessor wraps the category assigned to ordinal 0.
func KnownPredecessor(c FaultCategory) Predecessor {
	return Predecessor{category: c, known: true}
}

// Category returns the predecessor's category and whether it is known.
func (p Predecessor) Category() (FaultCategory, bool) {
	return p.category, p.known
}

// AssignFault deterministically assigns a fault record to entityID sitting at
// ordinal within an enumeration of total devices.
func AssignFault(entityID string, ordinal, total int, pred Predecessor) (FaultRecord, error) {
	if total <= 0 {
		return FaultRecord{}, fmt.Errorf("assign fault %q: %w", entityID, ErrEmptyEnumeration)
	}
	if ordinal < 0 || ordinal >= total {
		return FaultRecord{}, fmt.Errorf("assign fault %q at %d of %d: %w", entityID, ordinal, total, ErrInvalidOrdinal)
	}

	seed := Seed(entityID, 0)
	p := Scalar(entityID, 0)

	category := FaultNone
	if forced, prob := faultProbability(ordinal, total, pred); forced || p < prob {
		category = faultyCategories[mod(seed, len(faultyCategories))]
	}

	history := faultHistory(seed, category)
	return FaultRecord{
		EntityID: entityID,
		Category: category,
		Severity: meanSeverity(history),
		History:  history,
	}, nil
}

// AssignFaults runs AssignFault over an ordered enumeration, computing
// ordinal 0 first and threading its category into ordinal 1.
func AssignFaults(ids []string) ([]FaultRecord, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyEnumeration
	}
	out := make([]FaultRecord, len(ids))
	pred := UnknownPredecessor
	for i, id := range ids {
		rec, err := AssignFault(id, i, len(ids), pred)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			pred = KnownPredecessor(rec.Category)
		}
		out[i] = rec
	}
	return out, nil
}

// faultProbability returns the fault probability for a position, or forced
// when ordinal 1 must be faulty because ordinal 0 is healthy.
func faultProbability(ordinal, total int, pred Predecessor) (forced bool, prob float64) {
	if total < 2 {
		return false, probSmallEnumeration
	}
	switch ordinal {
	case 0:
		return false, probFirst
	case 1:
		c, known := pred.Category()
		switch {
		case !known:
			return false, probSecondUnknown
		case c.Faulty():
			return false, probSecondAfterFault
		default:
			return true, 1
		}
	default:
		return false, probRest
	}
}

func faultHistory(seed int, category FaultCategory) []SeveritySample {
	band := severityBands[category]
	out := make([]SeveritySample, historyHours)
	for i := range out {
		v := band.lo + NoiseAt(seed+i*historyHourStride)*band.width
		out[i] = SeveritySample{
			Hour:  HourLabel(i),
			Value: int(math.Round(v)),
		}
	}
	return out
}

func meanSeverity(history []SeveritySample) int {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, s := range history {
		sum += s.Value
	}
	return int(math.Round(float64(sum) / float64(len(history))))
}

// HourLabel formats an hour of day as "HH:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", mod(hour, 24))
}
