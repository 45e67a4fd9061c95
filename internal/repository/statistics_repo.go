package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tjbuilding/internal/models"
)

// dateLayout is how dates are bound; both SQLite and MySQL compare DATE
// columns against this form.
const dateLayout = "2006-01-02"

type StatisticsSQL struct {
	db *sql.DB
}

func NewStatisticsSQL(db *sql.DB) *StatisticsSQL { return &StatisticsSQL{db: db} }

var _ Statistics = (*StatisticsSQL)(nil)

const (
	selectFloorStatisticsSQL = `SELECT r.name,
       COALESCE(SUM(rs.door_hours), 0),
       COALESCE(SUM(rs.occupied_hours), 0),
       COALESCE(SUM(rs.ac_hours), 0),
       COALESCE(SUM(rs.light_hours), 0),
       COALESCE(SUM(rs.energy), 0),
       COALESCE(AVG(rs.power), 0)
FROM room_statistics rs
INNER JOIN rooms r ON rs.room_id = r.id
WHERE r.floor = ? AND rs.date >= ?
GROUP BY rs.room_id, r.name
ORDER BY r.name`

	selectRoomTotalsSQL = `SELECT COALESCE(SUM(rs.door_hours), 0),
       COALESCE(SUM(rs.occupied_hours), 0),
       COALESCE(SUM(rs.ac_hours), 0),
       COALESCE(SUM(rs.light_hours), 0)
FROM room_statistics rs
INNER JOIN rooms r ON rs.room_id = r.id
WHERE r.name = ? AND rs.date >= ?`

	selectFloorsSQL       = `SELECT DISTINCT floor FROM rooms ORDER BY floor`
	selectRoomsByFloorSQL = `SELECT id, floor, name FROM rooms WHERE floor = ? ORDER BY name`
	selectRoomIDSQL       = `SELECT id FROM rooms WHERE floor = ? AND name = ?`
	insertRoomSQL         = `INSERT INTO rooms (floor, name) VALUES (?, ?)`
	deleteDailySQL        = `DELETE FROM room_statistics WHERE room_id = ? AND date = ?`
	insertDailySQL        = `INSERT INTO room_statistics (room_id, date, door_hours, occupied_hours, ac_hours, light_hours, energy, power) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

// FloorStatistics sums each room of floor from since onwards, ordered by
// room name. Rooms without rows in the period are omitted.
func (r *StatisticsSQL) FloorStatistics(ctx context.Context, floor string, since time.Time) ([]models.RoomStatistics, error) {
	rows, err := r.db.QueryContext(ctx, selectFloorStatisticsSQL, floor, since.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("select floor %q statistics: %w", floor, err)
	}
	defer rows.Close()

	out := make([]models.RoomStatistics, 0, 16)
	for rows.Next() {
		var s models.RoomStatistics
		if err := rows.Scan(&s.Name, &s.Door, &s.Occupied, &s.AC, &s.Light, &s.Energy, &s.Power); err != nil {
			return nil, fmt.Errorf("scan floor statistics: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate floor statistics: %w", err)
	}
	return out, nil
}

// RoomTotals sums one room's hours from since onwards. Unknown rooms yield
// zero totals.
func (r *StatisticsSQL) RoomTotals(ctx context.Context, room string, since time.Time) (models.HourTotals, error) {
	var t models.HourTotals
	err := r.db.QueryRowContext(ctx, selectRoomTotalsSQL, room, since.Format(dateLayout)).
		Scan(&t.Door, &t.Occupied, &t.AC, &t.Light)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.HourTotals{}, fmt.Errorf("select room %q totals: %w", room, err)
	}
	return t, nil
}

func (r *StatisticsSQL) Floors(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectFloorsSQL)
	if err != nil {
		return nil, fmt.Errorf("select floors: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scan floor: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate floors: %w", err)
	}
	return out, nil
}

func (r *StatisticsSQL) RoomsByFloor(ctx context.Context, floor string) ([]models.Room, error) {
	rows, err := r.db.QueryContext(ctx, selectRoomsByFloorSQL, floor)
	if err != nil {
		return nil, fmt.Errorf("select rooms of floor %q: %w", floor, err)
	}
	defer rows.Close()

	var out []models.Room
	for rows.Next() {
		var rm models.Room
		if err := rows.Scan(&rm.ID, &rm.Floor, &rm.Name); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return out, nil
}

// EnsureRoom returns the id of (floor, name), inserting the room if needed.
func (r *StatisticsSQL) EnsureRoom(ctx context.Context, floor, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, selectRoomIDSQL, floor, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("select room %s/%s: %w", floor, name, err)
	}
	res, err := r.db.ExecContext(ctx, insertRoomSQL, floor, name)
	if err != nil {
		return 0, fmt.Errorf("insert room %s/%s: %w", floor, name, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for room %s/%s: %w", floor, name, err)
	}
	return id, nil
}

// SaveDaily replaces the rows for each (room, date) in one transaction.
func (r *StatisticsSQL) SaveDaily(ctx context.Context, rows []models.DailyStatistics) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin statistics transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range rows {
		date := s.Date.Format(dateLayout)
		if _, err := tx.ExecContext(ctx, deleteDailySQL, s.RoomID, date); err != nil {
			return fmt.Errorf("delete statistics %d/%s: %w", s.RoomID, date, err)
		}
		if _, err := tx.ExecContext(ctx, insertDailySQL, s.RoomID, date,
			s.DoorHours, s.OccupiedHours, s.ACHours, s.LightHours, s.Energy, s.Power); err != nil {
			return fmt.Errorf("insert statistics %d/%s: %w", s.RoomID, date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit statistics transaction: %w", err)
	}
	return nil
}
