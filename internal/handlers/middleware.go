package handlers

import (
	"net/http"
	"strings"
	"time"

	"tjbuilding"
	"tjbuilding/internal/metrics"

	"github.com/gin-gonic/gin"
)

const (
	errMissingAuthHeader = "missing Authorization header"
	errBadAuthHeader     = "invalid Authorization header format"
	errBadToken          = "invalid or expired token"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, tjbuilding.Fail(errMissingAuthHeader))
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, tjbuilding.Fail(errBadAuthHeader))
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, tjbuilding.Fail(errBadToken))
		return
	}

	// store in Gin context
	c.Set("userId", userId)
	c.Next()
}

// requestMetrics records count and latency per matched route.
func (h *Handler) requestMetrics(c *gin.Context) {
	start := time.Now()
	c.Next()
	metrics.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
}
