package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"tjbuilding/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatisticsSQL_FloorStatistics(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	since := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectFloorStatisticsSQL)).
		WithArgs("3", "2024-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"name", "door", "occupied", "ac", "light", "energy", "power"}).
			AddRow("301", 10.5, 40.0, 30.0, 35.0, 120.4, 2.1).
			AddRow("302", 8.0, 22.0, 18.5, 20.0, 90.0, 1.8))

	got, err := NewStatisticsSQL(db).FloorStatistics(context.Background(), "3", since)
	if err != nil {
		t.Fatalf("FloorStatistics: %v", err)
	}
	if len(got) != 2 || got[0].Name != "301" || got[0].Energy != 120.4 || got[1].AC != 18.5 {
		t.Fatalf("got %+v", got)
	}
}

func TestStatisticsSQL_RoomTotals(t *testing.T) {
	tests := []struct {
		name    string
		expect  func(m sqlmock.Sqlmock)
		want    models.HourTotals
		wantErr bool
	}{
		{
			name: "sums",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectRoomTotalsSQL)).
					WithArgs("301", "2024-06-01").
					WillReturnRows(sqlmock.NewRows([]string{"door", "occupied", "ac", "light"}).AddRow(1.5, 2.5, 3.5, 4.5))
			},
			want: models.HourTotals{Door: 1.5, Occupied: 2.5, AC: 3.5, Light: 4.5},
		},
		{
			name: "unknown room is zero",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectRoomTotalsSQL)).
					WithArgs("301", "2024-06-01").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "query error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectRoomTotalsSQL)).
					WillReturnError(errors.New("boom"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			tt.expect(mock)

			got, err := NewStatisticsSQL(db).RoomTotals(context.Background(), "301", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatisticsSQL_FloorsAndRooms(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectFloorsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"floor"}).AddRow("1").AddRow("2"))
	mock.ExpectQuery(regexp.QuoteMeta(selectRoomsByFloorSQL)).
		WithArgs("2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "floor", "name"}).AddRow(4, "2", "201"))

	repo := NewStatisticsSQL(db)
	floors, err := repo.Floors(context.Background())
	if err != nil || len(floors) != 2 {
		t.Fatalf("Floors = %v, %v", floors, err)
	}
	rooms, err := repo.RoomsByFloor(context.Background(), "2")
	if err != nil || len(rooms) != 1 || rooms[0].ID != 4 || rooms[0].Name != "201" {
		t.Fatalf("RoomsByFloor = %+v, %v", rooms, err)
	}
}

func TestStatisticsSQL_EnsureRoom(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomIDSQL)).
			WithArgs("3", "301").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

		id, err := NewStatisticsSQL(db).EnsureRoom(context.Background(), "3", "301")
		if err != nil || id != 8 {
			t.Fatalf("EnsureRoom = %d, %v", id, err)
		}
	})
	t.Run("inserted", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		mock.ExpectQuery(regexp.QuoteMeta(selectRoomIDSQL)).
			WithArgs("3", "309").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(regexp.QuoteMeta(insertRoomSQL)).
			WithArgs("3", "309").
			WillReturnResult(sqlmock.NewResult(12, 1))

		id, err := NewStatisticsSQL(db).EnsureRoom(context.Background(), "3", "309")
		if err != nil || id != 12 {
			t.Fatalf("EnsureRoom = %d, %v", id, err)
		}
	})
}

func TestStatisticsSQL_SaveDaily(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteDailySQL)).
		WithArgs(int64(8), "2024-06-03").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(insertDailySQL)).
		WithArgs(int64(8), "2024-06-03", 1.0, 2.0, 3.0, 4.0, 5.0, 6.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := NewStatisticsSQL(db).SaveDaily(context.Background(), []models.DailyStatistics{{
		RoomID: 8, Date: day, DoorHours: 1, OccupiedHours: 2, ACHours: 3, LightHours: 4, Energy: 5, Power: 6,
	}})
	if err != nil {
		t.Fatalf("SaveDaily: %v", err)
	}
}

func TestStatisticsSQL_SaveDailyRollsBack(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteDailySQL)).WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := NewStatisticsSQL(db).SaveDaily(context.Background(), []models.DailyStatistics{{RoomID: 1, Date: time.Now()}})
	if err == nil {
		t.Fatalf("expected error")
	}
}
