package service

import (
	"fmt"

	"tjbuilding/internal/repository"
	"tjbuilding/internal/telemetry"
)

// StatusService derives occupancy timelines from deterministic observations.
type StatusService struct {
	inv         repository.Inventory
	defaultDays int
}

func NewStatusService(inv repository.Inventory, defaultDays int) *StatusService {
	if defaultDays <= 0 {
		defaultDays = defaultStatisticsDays
	}
	return &StatusService{inv: inv, defaultDays: defaultDays}
}

func (s *StatusService) days(days int) (int, error) {
	if days < 0 {
		return 0, fmt.Errorf("%d: %w", days, ErrInvalidDays)
	}
	if days == 0 {
		return s.defaultDays, nil
	}
	return days, nil
}

func (s *StatusService) RoomStatus(room string, days int) (telemetry.RoomStatus, error) {
	n, err := s.days(days)
	if err != nil {
		return telemetry.RoomStatus{}, err
	}
	return telemetry.ObserveRoom(room, n)
}

// FloorStatus merges the observations of every inventory room on floor.
func (s *StatusService) FloorStatus(floor string, days int) (telemetry.FloorStatus, error) {
	n, err := s.days(days)
	if err != nil {
		return telemetry.FloorStatus{}, err
	}
	f, err := s.inv.Floor(floor)
	if err != nil {
		return telemetry.FloorStatus{}, err
	}
	rooms := make([]string, 0, len(f.Rooms))
	for _, r := range f.Rooms {
		rooms = append(rooms, r.Name)
	}
	return telemetry.ObserveFloor(rooms, n)
}
