package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deusflow/secdigest/internal/digest"
	"github.com/deusflow/secdigest/internal/logger"
	"github.com/deusflow/secdigest/internal/window"
)

type DigestGenerator interface {
	Generate(ctx context.Context, w window.Window, apiKey string) ([]digest.Item, error)
}

type DigestHandler struct {
	generator DigestGenerator
	apiKey    string
	now       func() time.Time
}

func NewDigestHandler(generator DigestGenerator, apiKey string) *DigestHandler {
	return &DigestHandler{generator: generator, apiKey: apiKey, now: time.Now}
}

func (h *DigestHandler) GenerateDigest(c *gin.Context) {
	days, err := parseDays(c.Query("days"))
	if err != nil || days <= 0 {
		logger.Warn("invalid days parameter", "value", c.Query("days"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please specify a valid positive number of days for the digest."})
		return
	}

	w := window.ForDays(days, h.now())
	logger.Info("generating digest", "days", days, "start", w.Start.Format(time.RFC3339), "end", w.End.Format(time.RFC3339))

	items, err := h.generator.Generate(c.Request.Context(), w, h.apiKey)
	if err != nil {
		logger.Error("error generating digest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "An error occurred while generating the cybersecurity digest.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// parseDays reads the leading integer of raw, so "7d" and "2.5" give 7 and 2.
func parseDays(raw string) (int, error) {
	s := strings.TrimLeft(raw, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s[:end])
}
