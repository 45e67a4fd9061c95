package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tjbuilding/internal/models"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Knowledge stores the assistant's question/answer entries.
type Knowledge interface {
	ListActive(ctx context.Context) ([]models.Knowledge, error)
	Suggested(ctx context.Context, limit int) ([]string, error)
	List(ctx context.Context) ([]models.Knowledge, error)
	Create(ctx context.Context, k models.Knowledge) (int64, error)
	Update(ctx context.Context, k models.Knowledge) error
	Delete(ctx context.Context, id int64) error
}

// Statistics reads and writes per-room daily statistics. since is the first
// date included.
type Statistics interface {
	FloorStatistics(ctx context.Context, floor string, since time.Time) ([]models.RoomStatistics, error)
	RoomTotals(ctx context.Context, room string, since time.Time) (models.HourTotals, error)
	Floors(ctx context.Context) ([]string, error)
	RoomsByFloor(ctx context.Context, floor string) ([]models.Room, error)
	EnsureRoom(ctx context.Context, floor, name string) (int64, error)
	SaveDaily(ctx context.Context, rows []models.DailyStatistics) error
}

// Inventory exposes the static building description.
type Inventory interface {
	Building() models.Building
	Floor(id string) (models.Floor, error)
}

type Repository struct {
	Auth       Authorization
	Knowledge  Knowledge
	Statistics Statistics
	Inventory  Inventory
}

func NewRepository(db *sql.DB, inv Inventory) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Knowledge:  NewKnowledgeSQL(db),
		Statistics: NewStatisticsSQL(db),
		Inventory:  inv,
	}
}
