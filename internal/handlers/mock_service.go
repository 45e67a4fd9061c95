package handlers

import (
	"context"
	"net/http"

	"tjbuilding/internal/models"
	"tjbuilding/internal/service"
	"tjbuilding/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockAssistant struct {
	answer      models.AssistantAnswer
	answerErr   error
	suggestions []string
	suggestErr  error
	entries     []models.Knowledge
	addID       int64
	mutateErr   error

	lastQuestion string
	lastAdded    models.Knowledge
	lastUpdated  models.Knowledge
	lastDeleted  int64
}

func (m *mockAssistant) Answer(ctx context.Context, question string) (models.AssistantAnswer, error) {
	m.lastQuestion = question
	return m.answer, m.answerErr
}
func (m *mockAssistant) Suggestions(ctx context.Context) ([]string, error) {
	return m.suggestions, m.suggestErr
}
func (m *mockAssistant) ListKnowledge(ctx context.Context) ([]models.Knowledge, error) {
	return m.entries, nil
}
func (m *mockAssistant) AddKnowledge(ctx context.Context, k models.Knowledge) (int64, error) {
	m.lastAdded = k
	return m.addID, m.mutateErr
}
func (m *mockAssistant) UpdateKnowledge(ctx context.Context, k models.Knowledge) error {
	m.lastUpdated = k
	return m.mutateErr
}
func (m *mockAssistant) DeleteKnowledge(ctx context.Context, id int64) error {
	m.lastDeleted = id
	return m.mutateErr
}

type mockStatistics struct {
	rows   []models.RoomStatistics
	totals models.HourTotals
	floors []string
	rooms  []models.Room
	err    error

	lastFloor string
	lastRoom  string
	lastDays  int
}

func (m *mockStatistics) FloorStatistics(ctx context.Context, floor string, days int) ([]models.RoomStatistics, error) {
	m.lastFloor, m.lastDays = floor, days
	return m.rows, m.err
}
func (m *mockStatistics) RoomStatistics(ctx context.Context, room string, days int) (models.HourTotals, error) {
	m.lastRoom, m.lastDays = room, days
	return m.totals, m.err
}
func (m *mockStatistics) Floors(ctx context.Context) ([]string, error) {
	return m.floors, m.err
}
func (m *mockStatistics) RoomsByFloor(ctx context.Context, floor string) ([]models.Room, error) {
	m.lastFloor = floor
	return m.rooms, m.err
}

type mockFloorPlan struct {
	info    service.SessionInfo
	openErr error
	floor   telemetry.FloorAggregate
	room    telemetry.RoomAggregate
	device  telemetry.DeviceReport
	viewErr error

	lastFloor  string
	lastKind   string
	lastClosed string
	lastRoom   string
	lastDevice string
	lastOn     bool
}

func (m *mockFloorPlan) OpenSession(floor, kind string) (service.SessionInfo, error) {
	m.lastFloor, m.lastKind = floor, kind
	return m.info, m.openErr
}
func (m *mockFloorPlan) CloseSession(id string) error {
	m.lastClosed = id
	return m.viewErr
}
func (m *mockFloorPlan) FloorView(id string) (telemetry.FloorAggregate, error) {
	return m.floor, m.viewErr
}
func (m *mockFloorPlan) RoomView(id, room string) (telemetry.RoomAggregate, error) {
	m.lastRoom = room
	return m.room, m.viewErr
}
func (m *mockFloorPlan) SetDeviceState(id, deviceID string, on bool) (telemetry.DeviceReport, error) {
	m.lastDevice, m.lastOn = deviceID, on
	return m.device, m.viewErr
}

type mockStatus struct {
	room  telemetry.RoomStatus
	floor telemetry.FloorStatus
	err   error

	lastDays int
}

func (m *mockStatus) RoomStatus(room string, days int) (telemetry.RoomStatus, error) {
	m.lastDays = days
	return m.room, m.err
}
func (m *mockStatus) FloorStatus(floor string, days int) (telemetry.FloorStatus, error) {
	m.lastDays = days
	return m.floor, m.err
}

type mockReports struct {
	out []byte
	err error

	lastKind   string
	lastFormat string
}

func (m *mockReports) FloorReport(ctx context.Context, floor, kind, format string) ([]byte, error) {
	m.lastKind, m.lastFormat = kind, format
	return m.out, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
