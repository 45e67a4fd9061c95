package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"tjbuilding/internal/repository"
	"tjbuilding/internal/service"
	"tjbuilding/internal/telemetry"
)

func TestStatusHandlers(t *testing.T) {
	st := &mockStatus{
		room:  telemetry.RoomStatus{Room: "301", WorkingHours: 12.5, SpanHours: 168},
		floor: telemetry.FloorStatus{Rooms: []telemetry.RoomTotals{{Room: "301"}, {Room: "302"}}},
	}
	r := newTestRouter(&service.Service{Status: st})

	w := doJSON(r, http.MethodGet, "/api/v1/status/rooms/301?days=3", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("room status=%d, body=%s", w.Code, w.Body.String())
	}
	var room telemetry.RoomStatus
	_ = json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &room)
	if room.WorkingHours != 12.5 || st.lastDays != 3 {
		t.Fatalf("room = %+v, days = %d", room, st.lastDays)
	}

	if w := doJSON(r, http.MethodGet, "/api/v1/status/rooms/301?days=abc", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad days status=%d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/status/floors/3", "", nil)
	var floor telemetry.FloorStatus
	_ = json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &floor)
	if w.Code != http.StatusOK || len(floor.Rooms) != 2 || st.lastDays != 0 {
		t.Fatalf("floor status=%d, rooms=%d, days=%d", w.Code, len(floor.Rooms), st.lastDays)
	}

	st.err = repository.ErrFloorNotFound
	if w := doJSON(r, http.MethodGet, "/api/v1/status/floors/9", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown floor status=%d", w.Code)
	}
}
