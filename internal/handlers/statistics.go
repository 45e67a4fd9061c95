package handlers

import (
	"net/http"

	"tjbuilding"

	"github.com/gin-gonic/gin"
)

// @Summary      Per-room statistics of a floor
// @Description  Sums recorded hours and energy over the last days (default from config).
// @Tags         statistics
// @Produce      json
// @Param        floor  query     string  true   "Floor id"  example(3)
// @Param        days   query     int     false  "Period in days"
// @Success      200    {object}  tjbuilding.Response
// @Failure      400    {object}  tjbuilding.Response
// @Failure      500    {object}  tjbuilding.Response
// @Router       /api/statistics/floor [get]
func (h *Handler) getFloorStatistics(c *gin.Context) {
	floor := c.Query("floor")
	if floor == "" {
		c.JSON(http.StatusBadRequest, tjbuilding.Fail(errMissingFloor))
		return
	}
	days, ok := queryDays(c)
	if !ok {
		return
	}
	rows, err := h.services.FloorStatistics(c.Request.Context(), floor, days)
	if err != nil {
		h.respondError(c, "statistics_floor_failed", err, "floor", floor)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(rows))
}

// @Summary      Hour totals of one room
// @Tags         statistics
// @Produce      json
// @Param        room  query     string  true   "Room name"  example(301)
// @Param        days  query     int     false  "Period in days"
// @Success      200   {object}  tjbuilding.Response
// @Failure      400   {object}  tjbuilding.Response
// @Failure      500   {object}  tjbuilding.Response
// @Router       /api/statistics/room [get]
func (h *Handler) getRoomStatistics(c *gin.Context) {
	room := c.Query("room")
	if room == "" {
		c.JSON(http.StatusBadRequest, tjbuilding.Fail(errMissingRoom))
		return
	}
	days, ok := queryDays(c)
	if !ok {
		return
	}
	totals, err := h.services.RoomStatistics(c.Request.Context(), room, days)
	if err != nil {
		h.respondError(c, "statistics_room_failed", err, "room", room)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(totals))
}

// @Summary      Floors with recorded rooms
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  tjbuilding.Response
// @Failure      500  {object}  tjbuilding.Response
// @Router       /api/statistics/floors [get]
func (h *Handler) getFloors(c *gin.Context) {
	floors, err := h.services.Floors(c.Request.Context())
	if err != nil {
		h.respondError(c, "statistics_floors_failed", err)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(floors))
}

// @Summary      Rooms of a floor
// @Tags         statistics
// @Produce      json
// @Param        floor  query     string  true  "Floor id"
// @Success      200    {object}  tjbuilding.Response
// @Failure      400    {object}  tjbuilding.Response
// @Failure      500    {object}  tjbuilding.Response
// @Router       /api/statistics/rooms [get]
func (h *Handler) getRoomsByFloor(c *gin.Context) {
	floor := c.Query("floor")
	if floor == "" {
		c.JSON(http.StatusBadRequest, tjbuilding.Fail(errMissingFloor))
		return
	}
	rooms, err := h.services.RoomsByFloor(c.Request.Context(), floor)
	if err != nil {
		h.respondError(c, "statistics_rooms_failed", err, "floor", floor)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(rooms))
}
