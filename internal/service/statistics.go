package service

import (
	"context"
	"fmt"
	"time"

	"tjbuilding/internal/models"
	"tjbuilding/internal/repository"
)

const defaultStatisticsDays = 7

type StatisticsService struct {
	repo        repository.Statistics
	defaultDays int
	now         func() time.Time
}

func NewStatisticsService(repo repository.Statistics, defaultDays int) *StatisticsService {
	if defaultDays <= 0 {
		defaultDays = defaultStatisticsDays
	}
	return &StatisticsService{repo: repo, defaultDays: defaultDays, now: time.Now}
}

// since returns the first date included in a days-long window ending today.
// The cutoff is computed here so the same SQL runs on every driver.
func (s *StatisticsService) since(days int) (time.Time, error) {
	if days < 0 {
		return time.Time{}, fmt.Errorf("%d: %w", days, ErrInvalidDays)
	}
	if days == 0 {
		days = s.defaultDays
	}
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days), nil
}

func (s *StatisticsService) FloorStatistics(ctx context.Context, floor string, days int) ([]models.RoomStatistics, error) {
	since, err := s.since(days)
	if err != nil {
		return nil, err
	}
	return s.repo.FloorStatistics(ctx, floor, since)
}

func (s *StatisticsService) RoomStatistics(ctx context.Context, room string, days int) (models.HourTotals, error) {
	since, err := s.since(days)
	if err != nil {
		return models.HourTotals{}, err
	}
	return s.repo.RoomTotals(ctx, room, since)
}

func (s *StatisticsService) Floors(ctx context.Context) ([]string, error) {
	return s.repo.Floors(ctx)
}

func (s *StatisticsService) RoomsByFloor(ctx context.Context, floor string) ([]models.Room, error) {
	return s.repo.RoomsByFloor(ctx, floor)
}
