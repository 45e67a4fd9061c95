package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tjbuilding/internal/metrics"
	"tjbuilding/internal/models"
	"tjbuilding/internal/repository"
	"tjbuilding/internal/telemetry"

	"github.com/google/uuid"
)

// Device kinds a floor-plan session can show.
const (
	KindAC    = "ac"
	KindLight = "light"
)

const defaultSessionTTL = 30 * time.Minute

// SessionInfo identifies an open floor-plan session.
type SessionInfo struct {
	ID        string    `json:"id"`
	Floor     string    `json:"floor"`
	Kind      string    `json:"kind"`
	Devices   int       `json:"devices"`
	ExpiresAt time.Time `json:"expires_at"`
}

type floorSession struct {
	info     SessionInfo
	devices  []telemetry.DeviceInput
	cache    *telemetry.Session
	lastSeen time.Time
}

// FloorPlanService keeps one telemetry session per open view. Records are
// generated on first read and stay stable until the session is closed or
// reaped.
type FloorPlanService struct {
	inv repository.Inventory
	obs telemetry.Observer
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*floorSession
}

func NewFloorPlanService(inv repository.Inventory, ttl time.Duration, obs telemetry.Observer) *FloorPlanService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &FloorPlanService{
		inv:      inv,
		obs:      obs,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*floorSession),
	}
}

// deviceType maps a view kind to the inventory device type.
func deviceType(kind string) (string, error) {
	switch kind {
	case KindAC:
		return models.DeviceAirConditioner, nil
	case KindLight:
		return models.DeviceLight, nil
	default:
		return "", fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}

// floorDevices lists the devices of kind on floor in inventory order.
func floorDevices(inv repository.Inventory, floor, kind string) ([]telemetry.DeviceInput, error) {
	typ, err := deviceType(kind)
	if err != nil {
		return nil, err
	}
	f, err := inv.Floor(floor)
	if err != nil {
		return nil, err
	}
	var out []telemetry.DeviceInput
	for _, r := range f.Rooms {
		for _, d := range r.Devices {
			if d.Type != typ {
				continue
			}
			out = append(out, telemetry.DeviceInput{ID: d.ID, Name: d.Name, Room: r.Name, PowerW: d.PowerW, On: d.On})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("floor %q has no %s devices: %w", floor, kind, telemetry.ErrEmptyEnumeration)
	}
	return out, nil
}

func (s *FloorPlanService) OpenSession(floor, kind string) (SessionInfo, error) {
	devices, err := floorDevices(s.inv, floor, kind)
	if err != nil {
		return SessionInfo{}, err
	}
	now := s.now()
	fs := &floorSession{
		info: SessionInfo{
			ID:        uuid.NewString(),
			Floor:     floor,
			Kind:      kind,
			Devices:   len(devices),
			ExpiresAt: now.Add(s.ttl),
		},
		devices:  devices,
		cache:    telemetry.NewSession(s.obs),
		lastSeen: now,
	}

	s.mu.Lock()
	s.sessions[fs.info.ID] = fs
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SetOpenSessions(n)
	return fs.info, nil
}

func (s *FloorPlanService) CloseSession(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	metrics.SetOpenSessions(n)
	return nil
}

// touch looks up id and extends its lifetime.
func (s *FloorPlanService) touch(id string) (*floorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fs, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	fs.lastSeen = s.now()
	fs.info.ExpiresAt = fs.lastSeen.Add(s.ttl)
	return fs, nil
}

func (s *FloorPlanService) FloorView(id string) (telemetry.FloorAggregate, error) {
	fs, err := s.touch(id)
	if err != nil {
		return telemetry.FloorAggregate{}, err
	}
	return telemetry.BuildFloor(fs.cache, fs.info.Floor, fs.devices)
}

// RoomView returns per-device details for one room. Lighting views carry an
// optimisation plan per device.
func (s *FloorPlanService) RoomView(id, room string) (telemetry.RoomAggregate, error) {
	fs, err := s.touch(id)
	if err != nil {
		return telemetry.RoomAggregate{}, err
	}
	var devices []telemetry.DeviceInput
	for _, d := range fs.devices {
		if d.Room == room {
			devices = append(devices, d)
		}
	}
	if len(devices) == 0 {
		return telemetry.RoomAggregate{}, fmt.Errorf("room %q on floor %q: %w", room, fs.info.Floor, ErrRoomNotFound)
	}

	agg, err := telemetry.BuildRoom(fs.cache, room, devices)
	if err != nil {
		return telemetry.RoomAggregate{}, err
	}
	if fs.info.Kind == KindLight {
		for i := range agg.Devices {
			plan := fs.cache.Plan(agg.Devices[i].Runtime)
			agg.Devices[i].Plan = &plan
		}
	}
	return agg, nil
}

// SetDeviceState toggles a device for this session and returns its
// re-derived report.
func (s *FloorPlanService) SetDeviceState(id, deviceID string, on bool) (telemetry.DeviceReport, error) {
	fs, err := s.touch(id)
	if err != nil {
		return telemetry.DeviceReport{}, err
	}
	room, found := "", false
	for _, d := range fs.devices {
		if d.ID == deviceID {
			room, found = d.Room, true
			break
		}
	}
	if !found {
		return telemetry.DeviceReport{}, fmt.Errorf("device %q: %w", deviceID, ErrDeviceNotFound)
	}

	fs.cache.SetState(deviceID, on)
	agg, err := s.RoomView(id, room)
	if err != nil {
		return telemetry.DeviceReport{}, err
	}
	for _, d := range agg.Devices {
		if d.ID == deviceID {
			return d, nil
		}
	}
	return telemetry.DeviceReport{}, fmt.Errorf("device %q: %w", deviceID, ErrDeviceNotFound)
}

// Reap closes sessions idle for longer than the TTL and returns how many
// were closed.
func (s *FloorPlanService) Reap() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	reaped := 0
	for id, fs := range s.sessions {
		if fs.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			reaped++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.AddReaped(reaped)
	metrics.SetOpenSessions(n)
	return reaped
}

// Run reaps idle sessions every tick until ctx is canceled.
func (s *FloorPlanService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Reap()
		}
	}
}
