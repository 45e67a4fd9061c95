package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tjbuilding"
	"tjbuilding/internal/repository"
	"tjbuilding/internal/service"
	"tjbuilding/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInternal        = "internal error"
	errInvalidBodyPref = "invalid body: "
	errInvalidDaysArg  = "days must be a non-negative integer"
	errMissingFloor    = "floor is required"
	errMissingRoom     = "room is required"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, tjbuilding.Fail(userMsg))
}

// respondError maps a service error to its status. Client errors echo the
// message; anything else is reported as an internal error.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = errInternal
	}
	h.logAndJSONError(c, code, msg, logKey, err, kv...)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrDeviceNotFound),
		errors.Is(err, repository.ErrFloorNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrEmptyQuestion),
		errors.Is(err, service.ErrInvalidKnowledge),
		errors.Is(err, service.ErrInvalidDays),
		errors.Is(err, service.ErrUnknownFormat),
		errors.Is(err, telemetry.ErrEmptyEnumeration),
		errors.Is(err, telemetry.ErrInvalidOrdinal),
		errors.Is(err, telemetry.ErrNegativePower),
		errors.Is(err, telemetry.ErrNegativeRuntime),
		errors.Is(err, telemetry.ErrInvalidInterval),
		errors.Is(err, telemetry.ErrInvalidDays):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// queryDays parses the optional days parameter; absent means 0, the
// service default.
func queryDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, tjbuilding.Fail(errInvalidDaysArg))
		return 0, false
	}
	return n, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
