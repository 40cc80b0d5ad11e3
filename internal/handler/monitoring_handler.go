package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsSource interface {
	GetStats() map[string]interface{}
	Healthy() bool
}

type MonitoringHandler struct {
	stats StatsSource
}

func NewMonitoringHandler(stats StatsSource) *MonitoringHandler {
	return &MonitoringHandler{stats: stats}
}

func (h *MonitoringHandler) GetHealth(c *gin.Context) {
	stats := h.stats.GetStats()

	status := http.StatusOK
	label := "ok"
	if !h.stats.Healthy() {
		status = http.StatusServiceUnavailable
		label = "error"
	}

	c.JSON(status, gin.H{
		"status":     label,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	})
}

func (h *MonitoringHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.GetStats())
}
