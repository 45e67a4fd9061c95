package service

import "errors"

// Request errors surfaced to HTTP callers as 4xx.
var (
	ErrUnknownKind      = errors.New("unknown device kind")
	ErrSessionNotFound  = errors.New("session not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrInvalidKnowledge = errors.New("question and answer are required")
	ErrInvalidDays      = errors.New("days must not be negative")
	ErrUnknownFormat    = errors.New("unknown report format")
)
