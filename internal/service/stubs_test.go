package service

import (
	"context"
	"fmt"
	"time"

	"tjbuilding/internal/models"
	"tjbuilding/internal/repository"
)

// inventoryStub serves a fixed building.
type inventoryStub struct {
	building models.Building
}

func (s *inventoryStub) Building() models.Building { return s.building }

func (s *inventoryStub) Floor(id string) (models.Floor, error) {
	for _, f := range s.building.Floors {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Floor{}, fmt.Errorf("floor %q: %w", id, repository.ErrFloorNotFound)
}

func testBuilding() *inventoryStub {
	return &inventoryStub{building: models.Building{
		Name: "Test",
		Floors: []models.Floor{{
			ID: "3",
			Rooms: []models.FloorRoom{
				{Name: "301", Devices: []models.Device{
					{ID: "ac-3F-1", Name: "AC 1", Type: models.DeviceAirConditioner, PowerW: 2000, On: true},
					{ID: "ac-3F-2", Name: "AC 2", Type: models.DeviceAirConditioner, PowerW: 1500},
					{ID: "light-3F-1", Name: "Light 1", Type: models.DeviceLight, PowerW: 40, On: true},
					{ID: "socket-3F-1", Name: "Socket", Type: models.DeviceSocket, PowerW: 200, On: true},
				}},
				{Name: "302", Devices: []models.Device{
					{ID: "ac-3F-3", Name: "AC 3", Type: models.DeviceAirConditioner, PowerW: 1800, On: true},
				}},
			},
		}, {
			ID: "4",
			Rooms: []models.FloorRoom{
				{Name: "401", Devices: []models.Device{
					{ID: "socket-4F-1", Type: models.DeviceSocket, PowerW: 100},
				}},
			},
		}},
	}}
}

// knowledgeStub is an in-memory repository.Knowledge.
type knowledgeStub struct {
	active     []models.Knowledge
	activeErr  error
	suggested  []string
	suggestErr error
	limitSeen  int
	created    []models.Knowledge
	updated    []models.Knowledge
	deleted    []int64
	updateErr  error
}

func (s *knowledgeStub) ListActive(ctx context.Context) ([]models.Knowledge, error) {
	return s.active, s.activeErr
}

func (s *knowledgeStub) Suggested(ctx context.Context, limit int) ([]string, error) {
	s.limitSeen = limit
	return s.suggested, s.suggestErr
}

func (s *knowledgeStub) List(ctx context.Context) ([]models.Knowledge, error) {
	return s.active, nil
}

func (s *knowledgeStub) Create(ctx context.Context, k models.Knowledge) (int64, error) {
	s.created = append(s.created, k)
	return int64(len(s.created)), nil
}

func (s *knowledgeStub) Update(ctx context.Context, k models.Knowledge) error {
	s.updated = append(s.updated, k)
	return s.updateErr
}

func (s *knowledgeStub) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

// statisticsStub records calls to repository.Statistics.
type statisticsStub struct {
	sinceSeen []time.Time
	rooms     map[string]int64
	saved     []models.DailyStatistics
	saveErr   error
}

func (s *statisticsStub) FloorStatistics(ctx context.Context, floor string, since time.Time) ([]models.RoomStatistics, error) {
	s.sinceSeen = append(s.sinceSeen, since)
	return []models.RoomStatistics{{Name: "301"}}, nil
}

func (s *statisticsStub) RoomTotals(ctx context.Context, room string, since time.Time) (models.HourTotals, error) {
	s.sinceSeen = append(s.sinceSeen, since)
	return models.HourTotals{Door: 1}, nil
}

func (s *statisticsStub) Floors(ctx context.Context) ([]string, error) { return []string{"3"}, nil }

func (s *statisticsStub) RoomsByFloor(ctx context.Context, floor string) ([]models.Room, error) {
	return []models.Room{{ID: 1, Floor: floor, Name: "301"}}, nil
}

func (s *statisticsStub) EnsureRoom(ctx context.Context, floor, name string) (int64, error) {
	if s.rooms == nil {
		s.rooms = map[string]int64{}
	}
	key := floor + "/" + name
	if id, ok := s.rooms[key]; ok {
		return id, nil
	}
	s.rooms[key] = int64(len(s.rooms) + 1)
	return s.rooms[key], nil
}

func (s *statisticsStub) SaveDaily(ctx context.Context, rows []models.DailyStatistics) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, rows...)
	return nil
}
