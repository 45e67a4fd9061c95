package handlers

import (
	"fmt"
	"net/http"

	"tjbuilding/internal/report"
	"tjbuilding/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Download a floor report
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        floor   path      string  true   "Floor id"
// @Param        kind    query     string  false  "Device kind"    Enums(ac,light)
// @Param        format  query     string  false  "Document type"  Enums(xlsx,pdf)
// @Success      200     {file}    binary
// @Failure      400     {object}  tjbuilding.Response
// @Failure      404     {object}  tjbuilding.Response
// @Router       /api/v1/floors/{floor}/report [get]
func (h *Handler) getFloorReport(c *gin.Context) {
	floor := c.Param("floor")
	kind := c.DefaultQuery("kind", service.KindAC)
	format := c.DefaultQuery("format", report.FormatXLSX)

	out, err := h.services.FloorReport(c.Request.Context(), floor, kind, format)
	if err != nil {
		h.respondError(c, "report_export_failed", err, "floor", floor, "kind", kind, "format", format)
		return
	}
	filename := fmt.Sprintf("floor-%s-%s.%s", floor, kind, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType(format), out)
}
