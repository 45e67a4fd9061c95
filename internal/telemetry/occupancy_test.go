package telemetry

import (
	"errors"
	"testing"
)

func checkIntervals(t *testing.T, label string, ivs []Interval) {
	t.Helper()
	for _, iv := range ivs {
		if iv.Start < 0 || iv.End > 24 || iv.Start > iv.End {
			t.Fatalf("%s: invalid interval %+v", label, iv)
		}
	}
}

func TestObserveDay(t *testing.T) {
	t.Parallel()

	for _, room := range []string{"301", "302", "501", "A-12"} {
		for day := 0; day < 7; day++ {
			obs := ObserveDay(room, day)
			if obs.Day != day {
				t.Fatalf("day = %d, want %d", obs.Day, day)
			}
			if len(obs.Door) == 0 || len(obs.Door) > doorMaxWindows {
				t.Fatalf("%s/%d: %d door windows", room, day, len(obs.Door))
			}
			for _, iv := range obs.Door {
				if iv.Start < doorDayStart || iv.End > doorDayEnd {
					t.Fatalf("%s/%d: door window %+v outside day", room, day, iv)
				}
			}
			checkIntervals(t, "door", obs.Door)
			checkIntervals(t, "occupied", obs.Occupied)
			checkIntervals(t, "ac", obs.AC)
			checkIntervals(t, "light", obs.Light)

			again := ObserveDay(room, day)
			if len(again.Door) != len(obs.Door) || again.Occupied[0] != obs.Occupied[0] {
				t.Fatalf("%s/%d: observations not deterministic", room, day)
			}
		}
	}
}

func TestObserveRoom(t *testing.T) {
	t.Parallel()

	st, err := ObserveRoom("301", 7)
	if err != nil {
		t.Fatalf("ObserveRoom: %v", err)
	}
	if len(st.Days) != 7 || st.SpanHours != 168 {
		t.Fatalf("days=%d span=%v", len(st.Days), st.SpanHours)
	}
	if st.WorkingHours > st.SpanHours {
		t.Fatalf("working hours %v exceed span", st.WorkingHours)
	}
	for _, v := range []float64{st.Totals.Door, st.Totals.Occupied, st.Totals.AC, st.Totals.Light} {
		if v > st.WorkingHours+0.1 {
			t.Fatalf("category total %v exceeds working hours %v", v, st.WorkingHours)
		}
	}

	if _, err := ObserveRoom("301", 0); !errors.Is(err, ErrInvalidDays) {
		t.Fatalf("zero days err = %v", err)
	}
}

func TestObserveFloor(t *testing.T) {
	t.Parallel()

	rooms := []string{"301", "302", "303"}
	fs, err := ObserveFloor(rooms, 3)
	if err != nil {
		t.Fatalf("ObserveFloor: %v", err)
	}
	if len(fs.Rooms) != len(rooms) || len(fs.Days) != 3 {
		t.Fatalf("rooms=%d days=%d", len(fs.Rooms), len(fs.Days))
	}
	for i, r := range fs.Rooms {
		if r.Room != rooms[i] {
			t.Fatalf("room order: got %q at %d", r.Room, i)
		}
	}
	for _, d := range fs.Days {
		for _, ivs := range [][]Interval{d.Door, d.Occupied, d.AC, d.Light} {
			for i := 1; i < len(ivs); i++ {
				if ivs[i].Start <= ivs[i-1].End {
					t.Fatalf("day %d: floor intervals not merged: %v", d.Day, ivs)
				}
			}
		}
	}
	// The floor union per day can never exceed 24 hours per category.
	if fs.Totals.Occupied > 3*24 {
		t.Fatalf("occupied total %v", fs.Totals.Occupied)
	}

	if _, err := ObserveFloor(nil, 3); !errors.Is(err, ErrEmptyEnumeration) {
		t.Fatalf("empty rooms err = %v", err)
	}
	if _, err := ObserveFloor(rooms, -1); !errors.Is(err, ErrInvalidDays) {
		t.Fatalf("negative days err = %v", err)
	}
}
