package handlers

import (
	"net/http"

	"tjbuilding"

	"github.com/gin-gonic/gin"
)

// @Summary      Occupancy timeline of a room
// @Tags         status
// @Produce      json
// @Param        room  path      string  true   "Room name"
// @Param        days  query     int     false  "Number of days"
// @Success      200   {object}  tjbuilding.Response
// @Failure      400   {object}  tjbuilding.Response
// @Router       /api/v1/status/rooms/{room} [get]
func (h *Handler) getRoomStatus(c *gin.Context) {
	days, ok := queryDays(c)
	if !ok {
		return
	}
	room := c.Param("room")
	st, err := h.services.RoomStatus(room, days)
	if err != nil {
		h.respondError(c, "status_room_failed", err, "room", room)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(st))
}

// @Summary      Merged occupancy timeline of a floor
// @Tags         status
// @Produce      json
// @Param        floor  path      string  true   "Floor id"
// @Param        days   query     int     false  "Number of days"
// @Success      200    {object}  tjbuilding.Response
// @Failure      400    {object}  tjbuilding.Response
// @Failure      404    {object}  tjbuilding.Response
// @Router       /api/v1/status/floors/{floor} [get]
func (h *Handler) getFloorStatus(c *gin.Context) {
	days, ok := queryDays(c)
	if !ok {
		return
	}
	floor := c.Param("floor")
	st, err := h.services.FloorStatus(floor, days)
	if err != nil {
		h.respondError(c, "status_floor_failed", err, "floor", floor)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(st))
}
