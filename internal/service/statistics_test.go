package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStatisticsService_Since(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		days    int
		want    time.Time
		wantErr error
	}{
		{name: "default period", days: 0, want: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{name: "explicit period", days: 3, want: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)},
		{name: "crosses month", days: 12, want: time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC)},
		{name: "negative", days: -1, wantErr: ErrInvalidDays},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &statisticsStub{}
			svc := NewStatisticsService(repo, 0)
			svc.now = func() time.Time { return now }

			_, err := svc.FloorStatistics(context.Background(), "3", tt.days)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if len(repo.sinceSeen) != 0 {
					t.Fatalf("repository must not be called")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !repo.sinceSeen[0].Equal(tt.want) {
				t.Fatalf("since = %v, want %v", repo.sinceSeen[0], tt.want)
			}
		})
	}
}

func TestStatisticsService_RoomStatistics(t *testing.T) {
	t.Parallel()

	repo := &statisticsStub{}
	svc := NewStatisticsService(repo, 5)
	svc.now = func() time.Time { return time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC) }

	got, err := svc.RoomStatistics(context.Background(), "301", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Door != 1 {
		t.Fatalf("totals = %+v", got)
	}
	if want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC); !repo.sinceSeen[0].Equal(want) {
		t.Fatalf("since = %v, want %v", repo.sinceSeen[0], want)
	}
}
