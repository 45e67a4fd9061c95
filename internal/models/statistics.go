package models

import "time"

// Room is a row of the rooms table.
type Room struct {
	ID    int64  `json:"id"`
	Floor string `json:"floor"`
	Name  string `json:"name"`
}

// RoomStatistics sums a room's recorded hours and energy over a period.
type RoomStatistics struct {
	Name     string  `json:"name"`
	Door     float64 `json:"door"`
	Occupied float64 `json:"occupied"`
	AC       float64 `json:"ac"`
	Light    float64 `json:"light"`
	Energy   float64 `json:"energy"`
	Power    float64 `json:"power"`
}

// HourTotals is the per-category hour sum of a single room.
type HourTotals struct {
	Door     float64 `json:"door"`
	Occupied float64 `json:"occupied"`
	AC       float64 `json:"ac"`
	Light    float64 `json:"light"`
}

// DailyStatistics is one row of room_statistics.
type DailyStatistics struct {
	RoomID        int64
	Date          time.Time
	DoorHours     float64
	OccupiedHours float64
	ACHours       float64
	LightHours    float64
	Energy        float64
	Power         float64
}
