package service

import (
	"context"
	"time"

	"tjbuilding/internal/models"
	"tjbuilding/internal/repository"
	"tjbuilding/internal/telemetry"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Assistant answers free-text questions from the knowledge base and
// manages its entries.
type Assistant interface {
	Answer(ctx context.Context, question string) (models.AssistantAnswer, error)
	Suggestions(ctx context.Context) ([]string, error)
	ListKnowledge(ctx context.Context) ([]models.Knowledge, error)
	AddKnowledge(ctx context.Context, k models.Knowledge) (int64, error)
	UpdateKnowledge(ctx context.Context, k models.Knowledge) error
	DeleteKnowledge(ctx context.Context, id int64) error
}

// Statistics reads recorded per-room statistics. days <= 0 selects the
// configured default period.
type Statistics interface {
	FloorStatistics(ctx context.Context, floor string, days int) ([]models.RoomStatistics, error)
	RoomStatistics(ctx context.Context, room string, days int) (models.HourTotals, error)
	Floors(ctx context.Context) ([]string, error)
	RoomsByFloor(ctx context.Context, floor string) ([]models.Room, error)
}

// FloorPlan serves session-scoped synthetic views of one floor and one
// device kind.
type FloorPlan interface {
	OpenSession(floor, kind string) (SessionInfo, error)
	CloseSession(id string) error
	FloorView(id string) (telemetry.FloorAggregate, error)
	RoomView(id, room string) (telemetry.RoomAggregate, error)
	SetDeviceState(id, deviceID string, on bool) (telemetry.DeviceReport, error)
}

// Status derives occupancy timelines for rooms and floors.
type Status interface {
	RoomStatus(room string, days int) (telemetry.RoomStatus, error)
	FloorStatus(floor string, days int) (telemetry.FloorStatus, error)
}

// Reports renders a floor aggregate as a downloadable document.
type Reports interface {
	FloorReport(ctx context.Context, floor, kind, format string) ([]byte, error)
}

// Seeder writes synthetic daily statistics for every inventory room.
type Seeder interface {
	Seed(ctx context.Context, days int, today time.Time) (int, error)
}

// Reaper closes idle sessions until ctx is canceled.
type Reaper interface {
	Run(ctx context.Context, tick time.Duration)
}

// Options carries the tunables services take from configuration.
type Options struct {
	SigningKey      string
	TokenTTL        time.Duration
	SessionTTL      time.Duration
	SuggestionLimit int
	DefaultDays     int
	Observer        telemetry.Observer
}

type Service struct {
	Authorization
	Assistant
	Statistics
	FloorPlan
	Status
	Reports
	Seeder
	Reaper
}

func NewService(repos *repository.Repository, opts Options) *Service {
	floorPlan := NewFloorPlanService(repos.Inventory, opts.SessionTTL, opts.Observer)
	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
		Assistant:     NewAssistantService(repos.Knowledge, opts.SuggestionLimit),
		Statistics:    NewStatisticsService(repos.Statistics, opts.DefaultDays),
		FloorPlan:     floorPlan,
		Status:        NewStatusService(repos.Inventory, opts.DefaultDays),
		Reports:       NewReportService(repos.Inventory, opts.Observer),
		Seeder:        NewSeederService(repos.Inventory, repos.Statistics),
		Reaper:        floorPlan,
	}
}
