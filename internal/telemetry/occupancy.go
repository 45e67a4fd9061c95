package telemetry

import (
	"fmt"
	"math"
)

// Observation window generation.
const (
	occupancySeedOffset = 211
	occupancyDayStride  = 37

	doorMinWindows    = 2
	doorMaxWindows    = 5
	doorDayStart      = 6.0
	doorDayEnd        = 22.0
	doorStartFraction = 0.6
	doorMinLength     = 0.5
	doorLengthSpan    = 2.0

	singleStartMin   = 6.0
	singleStartSpan  = 14.0
	singleMinLength  = 2.0
	singleLengthSpan = 8.0
)

// DayObservations holds one day of observed intervals per category.
type DayObservations struct {
	Day      int        `json:"day"`
	Door     []Interval `json:"door"`
	Occupied []Interval `json:"occupied"`
	AC       []Interval `json:"ac"`
	Light    []Interval `json:"light"`
}

// All returns every interval of the day regardless of category.
func (d DayObservations) All() []Interval {
	out := make([]Interval, 0, len(d.Door)+len(d.Occupied)+len(d.AC)+len(d.Light))
	out = append(out, d.Door...)
	out = append(out, d.Occupied...)
	out = append(out, d.AC...)
	return append(out, d.Light...)
}

// CategoryHours is covered time per category.
type CategoryHours struct {
	Door     float64 `json:"door"`
	Occupied float64 `json:"occupied"`
	AC       float64 `json:"ac"`
	Light    float64 `json:"light"`
}

func (h CategoryHours) add(d DayObservations) CategoryHours {
	return CategoryHours{
		Door:     h.Door + UnionDuration(d.Door),
		Occupied: h.Occupied + UnionDuration(d.Occupied),
		AC:       h.AC + UnionDuration(d.AC),
		Light:    h.Light + UnionDuration(d.Light),
	}
}

func (h CategoryHours) rounded() CategoryHours {
	return CategoryHours{
		Door:     Round1(h.Door),
		Occupied: Round1(h.Occupied),
		AC:       Round1(h.AC),
		Light:    Round1(h.Light),
	}
}

// RoomStatus summarises one room over a number of days.
type RoomStatus struct {
	Room         string            `json:"room"`
	Days         []DayObservations `json:"days"`
	Totals       CategoryHours     `json:"totals"`
	WorkingHours float64           `json:"working_hours"`
	SpanHours    float64           `json:"span_hours"`
}

// RoomTotals is one row of the floor table.
type RoomTotals struct {
	Room         string        `json:"room"`
	Totals       CategoryHours `json:"totals"`
	WorkingHours float64       `json:"working_hours"`
}

// FloorStatus summarises every room of a floor over a number of days.
// Days holds, per day and category, the intervals of all rooms merged.
type FloorStatus struct {
	Rooms  []RoomTotals      `json:"rooms"`
	Days   []DayObservations `json:"days"`
	Totals CategoryHours     `json:"totals"`
}

// ObserveDay generates the deterministic observations of room on day.
func ObserveDay(room string, day int) DayObservations {
	seq := NewSequence(Seed(room, occupancySeedOffset+day*occupancyDayStride))
	return DayObservations{
		Day:      day,
		Door:     doorWindows(seq),
		Occupied: []Interval{singleWindow(seq)},
		AC:       []Interval{singleWindow(seq)},
		Light:    []Interval{singleWindow(seq)},
	}
}

// ObserveRoom summarises room over days. Working hours are the union of all
// categories, computed per day and summed.
func ObserveRoom(room string, days int) (RoomStatus, error) {
	if days <= 0 {
		return RoomStatus{}, fmt.Errorf("observe room %q over %d days: %w", room, days, ErrInvalidDays)
	}
	st := RoomStatus{Room: room, Days: make([]DayObservations, days), SpanHours: float64(days * 24)}
	var totals CategoryHours
	working := 0.0
	for d := 0; d < days; d++ {
		obs := ObserveDay(room, d)
		st.Days[d] = obs
		totals = totals.add(obs)
		working += UnionDuration(obs.All())
	}
	st.Totals = totals.rounded()
	st.WorkingHours = Round1(working)
	return st, nil
}

// ObserveFloor merges per-category observations of rooms day by day.
func ObserveFloor(rooms []string, days int) (FloorStatus, error) {
	if len(rooms) == 0 {
		return FloorStatus{}, ErrEmptyEnumeration
	}
	if days <= 0 {
		return FloorStatus{}, fmt.Errorf("observe floor over %d days: %w", days, ErrInvalidDays)
	}
	fs := FloorStatus{
		Rooms: make([]RoomTotals, 0, len(rooms)),
		Days:  make([]DayObservations, days),
	}
	perDay := make([]DayObservations, days)
	for d := range perDay {
		perDay[d].Day = d
	}
	for _, room := range rooms {
		st, err := ObserveRoom(room, days)
		if err != nil {
			return FloorStatus{}, err
		}
		fs.Rooms = append(fs.Rooms, RoomTotals{Room: room, Totals: st.Totals, WorkingHours: st.WorkingHours})
		for d, obs := range st.Days {
			perDay[d].Door = append(perDay[d].Door, obs.Door...)
			perDay[d].Occupied = append(perDay[d].Occupied, obs.Occupied...)
			perDay[d].AC = append(perDay[d].AC, obs.AC...)
			perDay[d].Light = append(perDay[d].Light, obs.Light...)
		}
	}
	var totals CategoryHours
	for d, obs := range perDay {
		fs.Days[d] = DayObservations{
			Day:      d,
			Door:     MergeIntervals(obs.Door),
			Occupied: MergeIntervals(obs.Occupied),
			AC:       MergeIntervals(obs.AC),
			Light:    MergeIntervals(obs.Light),
		}
		totals = totals.add(fs.Days[d])
	}
	fs.Totals = totals.rounded()
	return fs, nil
}

// doorWindows places one opening in each equal sub-span of the door day.
func doorWindows(seq *Sequence) []Interval {
	n := doorMinWindows + int(math.Floor(seq.Next()*float64(doorMaxWindows-doorMinWindows+1)))
	span := (doorDayEnd - doorDayStart) / float64(n)
	out := make([]Interval, 0, n)
	for i := 0; i < n; i++ {
		baseStart := doorDayStart + float64(i)*span
		baseEnd := baseStart + span
		start := baseStart + seq.Next()*span*doorStartFraction
		end := math.Min(math.Min(start+seq.Between(doorMinLength, doorMinLength+doorLengthSpan), baseEnd), 24)
		if end > start {
			out = append(out, Interval{Start: start, End: end})
		}
	}
	return out
}

func singleWindow(seq *Sequence) Interval {
	start := seq.Between(singleStartMin, singleStartMin+singleStartSpan)
	end := math.Min(start+seq.Between(singleMinLength, singleMinLength+singleLengthSpan), 24)
	return Interval{Start: start, End: end}
}
