package telemetry

import (
	"fmt"
	"math"
	"testing"
)

func TestAssignRuntime_SegmentsMatchDuration(t *testing.T) {
	t.Parallel()

	for i := 0; i < 400; i++ {
		id := fmt.Sprintf("light-%dF-%d", i%9+1, i)
		rt := AssignRuntime(id, true)
		if !rt.Active {
			t.Fatalf("%s: expected active record", id)
		}
		if rt.DurationHours < minRuntimeHours || rt.DurationHours >= minRuntimeHours+runtimeSpanHours {
			t.Fatalf("%s: duration %v out of range", id, rt.DurationHours)
		}
		if len(rt.Segments) != len(DayTemplate) {
			t.Fatalf("%s: got %d segments", id, len(rt.Segments))
		}
		if diff := math.Abs(rt.SegmentHours() - rt.DurationHours); diff > segmentTolerance {
			t.Fatalf("%s: segments sum %v, duration %v", id, rt.SegmentHours(), rt.DurationHours)
		}
		for j, s := range rt.Segments {
			if s.Hours < 0 || s.Hours > DayTemplate[j].Capacity+segmentTolerance {
				t.Fatalf("%s: segment %d hours %v outside window capacity", id, j, s.Hours)
			}
			if s.Start != DayTemplate[j].Start || s.End != DayTemplate[j].End {
				t.Fatalf("%s: segment %d window %s-%s", id, j, s.Start, s.End)
			}
		}
	}
}

func TestAssignRuntime_HourLabels(t *testing.T) {
	t.Parallel()

	rt := AssignRuntime("ac-3F-1", true)
	if math.Abs(rt.DurationHours-4.92) > 1e-9 {
		t.Fatalf("duration = %v, want 4.92", rt.DurationHours)
	}
	want := []string{"10:00", "11:00", "12:00", "13:00", "14:00"}
	if len(rt.HourLabels) != len(want) {
		t.Fatalf("labels = %v, want %v", rt.HourLabels, want)
	}
	for i := range want {
		if rt.HourLabels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", rt.HourLabels, want)
		}
	}
}

func TestAssignRuntime_Off(t *testing.T) {
	t.Parallel()

	rt := AssignRuntime("light-1F-1", false)
	if rt.Active || rt.DurationHours != 0 || len(rt.Segments) != 0 || len(rt.HourLabels) != 0 {
		t.Fatalf("off record not empty: %+v", rt)
	}
	on := AssignRuntime("light-1F-1", true)
	off := on.Off()
	if off.EntityID != on.EntityID || off.Active || off.Segments != nil {
		t.Fatalf("Off() = %+v", off)
	}
}

func TestAssignRuntime_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := AssignRuntime("light-2F-4", true), AssignRuntime("light-2F-4", true)
	if a.DurationHours != b.DurationHours {
		t.Fatalf("durations differ")
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			t.Fatalf("segment %d differs: %+v vs %+v", i, a.Segments[i], b.Segments[i])
		}
	}
}
