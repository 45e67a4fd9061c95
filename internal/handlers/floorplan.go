package handlers

import (
	"net/http"

	"tjbuilding"

	"github.com/gin-gonic/gin"
)

// OpenSessionRequest selects the floor and device kind of a view.
type OpenSessionRequest struct {
	// Floor id from the building inventory
	Floor string `json:"floor" binding:"required" example:"3"`
	// Device kind. Allowed: ac, light
	Kind string `json:"kind" binding:"required" example:"ac"`
}

// DeviceStateRequest switches a device for the lifetime of a session.
type DeviceStateRequest struct {
	On *bool `json:"on" binding:"required" example:"false"`
}

// @Summary      Open a floor-plan session
// @Description  Generated records stay stable for the session's lifetime.
// @Tags         floorplan
// @Accept       json
// @Produce      json
// @Param        body  body      OpenSessionRequest  true  "Floor and kind"
// @Success      200   {object}  tjbuilding.Response
// @Failure      400   {object}  tjbuilding.Response
// @Failure      404   {object}  tjbuilding.Response
// @Router       /api/v1/sessions [post]
func (h *Handler) openSession(c *gin.Context) {
	var req OpenSessionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	info, err := h.services.OpenSession(req.Floor, req.Kind)
	if err != nil {
		h.respondError(c, "session_open_failed", err, "floor", req.Floor, "kind", req.Kind)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(info))
}

// @Summary      Close a floor-plan session
// @Tags         floorplan
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  tjbuilding.Response
// @Failure      404  {object}  tjbuilding.Response
// @Router       /api/v1/sessions/{id} [delete]
func (h *Handler) closeSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.CloseSession(id); err != nil {
		h.respondError(c, "session_close_failed", err, "session", id)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(gin.H{"id": id}))
}

// @Summary      Floor aggregate of a session
// @Tags         floorplan
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  tjbuilding.Response
// @Failure      404  {object}  tjbuilding.Response
// @Router       /api/v1/sessions/{id}/floor [get]
func (h *Handler) getFloorView(c *gin.Context) {
	id := c.Param("id")
	agg, err := h.services.FloorView(id)
	if err != nil {
		h.respondError(c, "session_floor_view_failed", err, "session", id)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(agg))
}

// @Summary      Room details of a session
// @Description  Lighting sessions include an optimisation plan per device.
// @Tags         floorplan
// @Produce      json
// @Param        id    path      string  true  "Session id"
// @Param        room  path      string  true  "Room name"
// @Success      200   {object}  tjbuilding.Response
// @Failure      404   {object}  tjbuilding.Response
// @Router       /api/v1/sessions/{id}/rooms/{room} [get]
func (h *Handler) getRoomView(c *gin.Context) {
	id, room := c.Param("id"), c.Param("room")
	agg, err := h.services.RoomView(id, room)
	if err != nil {
		h.respondError(c, "session_room_view_failed", err, "session", id, "room", room)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(agg))
}

// @Summary      Switch a device on or off
// @Tags         floorplan
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "Session id"
// @Param        device  path      string              true  "Device id"
// @Param        body    body      DeviceStateRequest  true  "State"
// @Success      200     {object}  tjbuilding.Response
// @Failure      400     {object}  tjbuilding.Response
// @Failure      404     {object}  tjbuilding.Response
// @Router       /api/v1/sessions/{id}/devices/{device}/state [put]
func (h *Handler) setDeviceState(c *gin.Context) {
	var req DeviceStateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, device := c.Param("id"), c.Param("device")
	rep, err := h.services.SetDeviceState(id, device, *req.On)
	if err != nil {
		h.respondError(c, "session_set_state_failed", err, "session", id, "device", device)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(rep))
}
