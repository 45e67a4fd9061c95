package service

import (
	"context"
	"fmt"
	"time"

	"tjbuilding/internal/metrics"
	"tjbuilding/internal/models"
	"tjbuilding/internal/repository"
	"tjbuilding/internal/telemetry"
)

// SeederService fills room_statistics from the same deterministic
// observations the status views use, so recorded and live figures agree.
type SeederService struct {
	inv   repository.Inventory
	stats repository.Statistics
}

func NewSeederService(inv repository.Inventory, stats repository.Statistics) *SeederService {
	return &SeederService{inv: inv, stats: stats}
}

// Seed writes days rows per inventory room, ending at today, and returns the
// number of rows written. Re-seeding a date replaces its row.
func (s *SeederService) Seed(ctx context.Context, days int, today time.Time) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("seed %d days: %w", days, ErrInvalidDays)
	}
	y, m, d := today.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	written := 0
	for _, floor := range s.inv.Building().Floors {
		for _, room := range floor.Rooms {
			rows, err := s.roomRows(ctx, floor.ID, room, days, end)
			if err != nil {
				return written, err
			}
			if err := s.stats.SaveDaily(ctx, rows); err != nil {
				return written, fmt.Errorf("save statistics for room %s: %w", room.Name, err)
			}
			written += len(rows)
			metrics.AddSeededRows(len(rows))
		}
	}
	return written, nil
}

func (s *SeederService) roomRows(ctx context.Context, floor string, room models.FloorRoom, days int, end time.Time) ([]models.DailyStatistics, error) {
	roomID, err := s.stats.EnsureRoom(ctx, floor, room.Name)
	if err != nil {
		return nil, err
	}
	faults, err := roomFaults(room)
	if err != nil {
		return nil, err
	}

	rows := make([]models.DailyStatistics, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)
		obs := telemetry.ObserveDay(room.Name, int(date.Unix()/86400))
		row := models.DailyStatistics{
			RoomID:        roomID,
			Date:          date,
			DoorHours:     telemetry.Round2(telemetry.UnionDuration(obs.Door)),
			OccupiedHours: telemetry.Round2(telemetry.UnionDuration(obs.Occupied)),
			ACHours:       telemetry.Round2(telemetry.UnionDuration(obs.AC)),
			LightHours:    telemetry.Round2(telemetry.UnionDuration(obs.Light)),
		}

		energy := 0.0
		for _, d := range room.Devices {
			hours := row.OccupiedHours
			switch d.Type {
			case models.DeviceAirConditioner:
				hours = row.ACHours
			case models.DeviceLight:
				hours = row.LightHours
			}
			f := faults[d.ID]
			e, err := telemetry.ComputeEnergy(d.PowerW, hours, f.Category, f.Severity)
			if err != nil {
				return nil, fmt.Errorf("device %s: %w", d.ID, err)
			}
			energy += e.KWh
		}
		row.Energy = telemetry.Round2(energy)
		if working := telemetry.UnionDuration(obs.All()); working > 0 {
			row.Power = telemetry.Round2(energy / working)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// roomFaults assigns faults per device kind within the room, matching the
// enumerations the floor-plan views use. Other device types stay healthy.
func roomFaults(room models.FloorRoom) (map[string]telemetry.FaultRecord, error) {
	byType := map[string][]string{}
	for _, d := range room.Devices {
		if d.Type == models.DeviceAirConditioner || d.Type == models.DeviceLight {
			byType[d.Type] = append(byType[d.Type], d.ID)
		}
	}
	out := make(map[string]telemetry.FaultRecord, len(room.Devices))
	for _, ids := range byType {
		recs, err := telemetry.AssignFaults(ids)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			out[r.EntityID] = r
		}
	}
	for _, d := range room.Devices {
		if _, ok := out[d.ID]; !ok {
			out[d.ID] = telemetry.FaultRecord{EntityID: d.ID, Category: telemetry.FaultNone}
		}
	}
	return out, nil
}
