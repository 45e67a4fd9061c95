package telemetry

import (
	"errors"
	"math"
	"testing"
)

func sampleDevices() []DeviceInput {
	return []DeviceInput{
		{ID: "ac-3F-1", Name: "AC 1", Room: "301", PowerW: 2000, On: true},
		{ID: "ac-3F-2", Name: "AC 2", Room: "301", PowerW: 1500, On: false},
		{ID: "ac-3F-3", Name: "AC 3", Room: "302", PowerW: 1800, On: true},
	}
}

func TestBuildRoom(t *testing.T) {
	t.Parallel()

	s := NewSession(nil)
	devs := sampleDevices()[:2]
	agg, err := BuildRoom(s, "301", devs)
	if err != nil {
		t.Fatalf("BuildRoom: %v", err)
	}
	if agg.TotalDevices != 2 || agg.OnDevices != 1 {
		t.Fatalf("total=%d on=%d", agg.TotalDevices, agg.OnDevices)
	}
	if agg.OnRate != 50 {
		t.Fatalf("on rate = %v", agg.OnRate)
	}
	if agg.Area != 60 {
		t.Fatalf("area = %v, want 60", agg.Area)
	}

	sum := 0.0
	for _, d := range agg.Devices {
		sum += d.Energy.KWh
	}
	if math.Abs(agg.EnergyKWh-Round2(sum)) > 1e-9 {
		t.Fatalf("room energy %v, devices sum %v", agg.EnergyKWh, sum)
	}
	if agg.Devices[1].Energy.KWh != 0 || agg.Devices[1].Runtime.Active {
		t.Fatalf("off device consumed energy: %+v", agg.Devices[1])
	}
	if agg.Devices[0].Advisory.Level != LevelUrgent {
		t.Fatalf("ac-3F-1 advisory = %q", agg.Devices[0].Advisory.Level)
	}
}

func TestBuildRoom_StateOverride(t *testing.T) {
	t.Parallel()

	s := NewSession(nil)
	s.SetState("ac-3F-2", true)
	agg, err := BuildRoom(s, "301", sampleDevices()[:2])
	if err != nil {
		t.Fatalf("BuildRoom: %v", err)
	}
	if agg.OnDevices != 2 || !agg.Devices[1].On {
		t.Fatalf("override ignored: on=%d", agg.OnDevices)
	}
}

func TestBuildRoom_Errors(t *testing.T) {
	t.Parallel()

	s := NewSession(nil)
	if _, err := BuildRoom(s, "301", nil); !errors.Is(err, ErrEmptyEnumeration) {
		t.Fatalf("empty err = %v", err)
	}
	bad := []DeviceInput{{ID: "ac-9F-1", Room: "901", PowerW: -10, On: true}}
	if _, err := BuildRoom(s, "901", bad); !errors.Is(err, ErrNegativePower) {
		t.Fatalf("negative power err = %v", err)
	}
}

func TestBuildFloor(t *testing.T) {
	t.Parallel()

	s := NewSession(nil)
	fa, err := BuildFloor(s, "3", sampleDevices())
	if err != nil {
		t.Fatalf("BuildFloor: %v", err)
	}
	if len(fa.Rooms) != 2 || fa.Rooms[0].Room != "301" || fa.Rooms[1].Room != "302" {
		t.Fatalf("rooms = %+v", fa.Rooms)
	}
	if fa.TotalDevices != 3 || fa.OnDevices != 2 {
		t.Fatalf("total=%d on=%d", fa.TotalDevices, fa.OnDevices)
	}
	if fa.Area != fa.Rooms[0].Area+fa.Rooms[1].Area {
		t.Fatalf("area %v is not the sum of rooms", fa.Area)
	}
	if fa.FaultyDevices < 1 {
		t.Fatalf("expected at least one faulty device")
	}

	if _, err := BuildFloor(s, "3", nil); !errors.Is(err, ErrEmptyEnumeration) {
		t.Fatalf("empty err = %v", err)
	}
}
