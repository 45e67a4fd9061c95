package handlers

import (
	"net/http"
	"strconv"

	"tjbuilding"
	"tjbuilding/internal/models"

	"github.com/gin-gonic/gin"
)

const errInvalidID = "id must be a positive integer"

type askRequest struct {
	Question string `json:"question"`
}

// KnowledgeRequest is the payload for creating or updating an entry.
type KnowledgeRequest struct {
	Question    string `json:"question" example:"How can we save energy?"`
	Answer      string `json:"answer" example:"Switch off idle lights and set AC to 26C."`
	Keywords    string `json:"keywords,omitempty" example:"save,energy"`
	Category    string `json:"category,omitempty" example:"tips"`
	IsSuggested bool   `json:"is_suggested"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (r KnowledgeRequest) toModel() models.Knowledge {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return models.Knowledge{
		Question:    r.Question,
		Answer:      r.Answer,
		Keywords:    r.Keywords,
		Category:    r.Category,
		IsSuggested: r.IsSuggested,
		SortOrder:   r.SortOrder,
		IsActive:    active,
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, tjbuilding.Fail(errInvalidID))
		return 0, false
	}
	return id, true
}

// @Summary      Ask the assistant
// @Description  Scores the question against active knowledge entries; a default answer is returned when nothing matches.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      askRequest  true  "Question"
// @Success      200   {object}  tjbuilding.Response
// @Failure      400   {object}  tjbuilding.Response
// @Failure      500   {object}  tjbuilding.Response
// @Router       /api/assistant/ask [post]
func (h *Handler) askAssistant(c *gin.Context) {
	var req askRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	answer, err := h.services.Answer(c.Request.Context(), req.Question)
	if err != nil {
		h.respondError(c, "assistant_answer_failed", err)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(answer))
}

// @Summary      Suggested questions
// @Description  Falls back to a built-in list when none are stored or the store is unavailable.
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  tjbuilding.Response
// @Router       /api/assistant/suggestions [get]
func (h *Handler) getSuggestions(c *gin.Context) {
	out, err := h.services.Suggestions(c.Request.Context())
	if err != nil && h.log != nil {
		h.log.Errorw("assistant_suggestions_failed", "err", err)
	}
	c.JSON(http.StatusOK, tjbuilding.OK(gin.H{"suggestions": out}))
}

// @Summary      List knowledge entries
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  tjbuilding.Response
// @Failure      500  {object}  tjbuilding.Response
// @Router       /api/assistant/knowledge [get]
func (h *Handler) listKnowledge(c *gin.Context) {
	entries, err := h.services.ListKnowledge(c.Request.Context())
	if err != nil {
		h.respondError(c, "knowledge_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(gin.H{"count": len(entries), "entries": entries}))
}

// @Summary      Add a knowledge entry
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      KnowledgeRequest  true  "Entry"
// @Success      200   {object}  tjbuilding.Response
// @Failure      400   {object}  tjbuilding.Response
// @Failure      401   {object}  tjbuilding.Response
// @Failure      500   {object}  tjbuilding.Response
// @Router       /api/assistant/knowledge [post]
// @Security     BearerAuth
func (h *Handler) addKnowledge(c *gin.Context) {
	var req KnowledgeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id, err := h.services.AddKnowledge(c.Request.Context(), req.toModel())
	if err != nil {
		h.respondError(c, "knowledge_add_failed", err)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(gin.H{"id": id}))
}

// @Summary      Update a knowledge entry
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Entry id"
// @Param        body  body      KnowledgeRequest  true  "Entry"
// @Success      200   {object}  tjbuilding.Response
// @Failure      400   {object}  tjbuilding.Response
// @Failure      401   {object}  tjbuilding.Response
// @Failure      404   {object}  tjbuilding.Response
// @Router       /api/assistant/knowledge/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateKnowledge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req KnowledgeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	k := req.toModel()
	k.ID = id
	if err := h.services.UpdateKnowledge(c.Request.Context(), k); err != nil {
		h.respondError(c, "knowledge_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(gin.H{"id": id}))
}

// @Summary      Delete a knowledge entry
// @Tags         assistant
// @Produce      json
// @Param        id   path      int  true  "Entry id"
// @Success      200  {object}  tjbuilding.Response
// @Failure      401  {object}  tjbuilding.Response
// @Failure      404  {object}  tjbuilding.Response
// @Router       /api/assistant/knowledge/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteKnowledge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteKnowledge(c.Request.Context(), id); err != nil {
		h.respondError(c, "knowledge_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, tjbuilding.OK(gin.H{"id": id}))
}

