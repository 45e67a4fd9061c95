package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"tjbuilding/internal/repository"
	"tjbuilding/internal/service"
	"tjbuilding/internal/telemetry"
)

func TestFloorPlanHandlers_OpenSession(t *testing.T) {
	fp := &mockFloorPlan{info: service.SessionInfo{ID: "s-1", Floor: "3", Kind: "ac", Devices: 10}}
	r := newTestRouter(&service.Service{FloorPlan: fp})

	w := doJSON(r, http.MethodPost, "/api/v1/sessions", `{"floor":"3","kind":"ac"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("open status=%d, body=%s", w.Code, w.Body.String())
	}
	var info service.SessionInfo
	_ = json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &info)
	if info.ID != "s-1" || info.Devices != 10 {
		t.Fatalf("info = %+v", info)
	}
	if fp.lastFloor != "3" || fp.lastKind != "ac" {
		t.Fatalf("service got %q/%q", fp.lastFloor, fp.lastKind)
	}

	if w := doJSON(r, http.MethodPost, "/api/v1/sessions", `{"floor":"3"}`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("missing kind status=%d", w.Code)
	}

	errCases := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("%q: %w", "heater", service.ErrUnknownKind), code: http.StatusBadRequest},
		{err: fmt.Errorf("floor %q: %w", "9", repository.ErrFloorNotFound), code: http.StatusNotFound},
		{err: fmt.Errorf("floor 4: %w", telemetry.ErrEmptyEnumeration), code: http.StatusBadRequest},
	}
	for _, tc := range errCases {
		fp.openErr = tc.err
		if w := doJSON(r, http.MethodPost, "/api/v1/sessions", `{"floor":"3","kind":"ac"}`, nil); w.Code != tc.code {
			t.Fatalf("%v: status=%d, want %d", tc.err, w.Code, tc.code)
		}
	}
}

func TestFloorPlanHandlers_Views(t *testing.T) {
	fp := &mockFloorPlan{
		floor:  telemetry.FloorAggregate{Floor: "3", TotalDevices: 2},
		room:   telemetry.RoomAggregate{Room: "301", TotalDevices: 2},
		device: telemetry.DeviceReport{ID: "ac-3F-1", On: false},
	}
	r := newTestRouter(&service.Service{FloorPlan: fp})

	w := doJSON(r, http.MethodGet, "/api/v1/sessions/s-1/floor", "", nil)
	var floor telemetry.FloorAggregate
	_ = json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &floor)
	if w.Code != http.StatusOK || floor.Floor != "3" {
		t.Fatalf("floor view status=%d, agg=%+v", w.Code, floor)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/sessions/s-1/rooms/301", "", nil)
	if w.Code != http.StatusOK || fp.lastRoom != "301" {
		t.Fatalf("room view status=%d, room=%q", w.Code, fp.lastRoom)
	}

	w = doJSON(r, http.MethodPut, "/api/v1/sessions/s-1/devices/ac-3F-1/state", `{"on":false}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set state status=%d, body=%s", w.Code, w.Body.String())
	}
	if fp.lastDevice != "ac-3F-1" || fp.lastOn {
		t.Fatalf("service got %q on=%v", fp.lastDevice, fp.lastOn)
	}
	if w := doJSON(r, http.MethodPut, "/api/v1/sessions/s-1/devices/ac-3F-1/state", `{}`, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("missing state status=%d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/v1/sessions/s-1", "", nil)
	if w.Code != http.StatusOK || fp.lastClosed != "s-1" {
		t.Fatalf("close status=%d, closed=%q", w.Code, fp.lastClosed)
	}

	fp.viewErr = fmt.Errorf("session %q: %w", "s-1", service.ErrSessionNotFound)
	for _, path := range []string{"/api/v1/sessions/s-1/floor", "/api/v1/sessions/s-1/rooms/301"} {
		if w := doJSON(r, http.MethodGet, path, "", nil); w.Code != http.StatusNotFound {
			t.Fatalf("%s: status=%d, want 404", path, w.Code)
		}
	}
}
