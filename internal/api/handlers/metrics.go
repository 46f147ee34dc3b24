package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Conceptual-Machines/ikovsky-api/internal/services"
	"github.com/gin-gonic/gin"
)

// StatsSource reports generation activity
type StatsSource interface {
	Stats() services.Stats
}

type MetricsHandler struct {
	startTime      time.Time
	version        string
	storageBackend string
	stats          StatsSource
}

func NewMetricsHandler(version, storageBackend string, stats StatsSource) *MetricsHandler {
	return &MetricsHandler{
		startTime:      time.Now(),
		version:        version,
		storageBackend: storageBackend,
		stats:          stats,
	}
}

// formatUptime renders d as 1h4m0.25s, dropping leading zero units
func formatUptime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := (d - time.Duration(h)*time.Hour - time.Duration(m)*time.Minute).Seconds()

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm%.2fs", h, m, sec)
	case m > 0:
		return fmt.Sprintf("%dm%.2fs", m, sec)
	default:
		return fmt.Sprintf("%.2fs", sec)
	}
}

type MetricsResponse struct {
	Status      string         `json:"status"`
	Version     string         `json:"version"`
	APIVersion  string         `json:"api_version"`
	Uptime      string         `json:"uptime"`
	StartTime   string         `json:"start_time"`
	Storage     string         `json:"storage_backend"`
	Generations services.Stats `json:"generations"`

	// Slots busy as a share of MaxConcurrent, 0-1
	SlotUtilization float64 `json:"slot_utilization"`
	Goroutines      int     `json:"goroutines"`
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	stats := h.stats.Stats()

	utilization := 0.0
	if stats.MaxConcurrent > 0 {
		utilization = float64(stats.ActiveGenerations) / float64(stats.MaxConcurrent)
	}

	c.JSON(http.StatusOK, MetricsResponse{
		Status:          "healthy",
		Version:         h.version,
		APIVersion:      apiVersion,
		Uptime:          formatUptime(time.Since(h.startTime)),
		StartTime:       h.startTime.UTC().Format(time.RFC3339),
		Storage:         h.storageBackend,
		Generations:     stats,
		SlotUtilization: utilization,
		Goroutines:      runtime.NumGoroutine(),
	})
}
