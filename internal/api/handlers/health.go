package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	storageBackend string
}

func NewHealthHandler(storageBackend string) *HealthHandler {
	return &HealthHandler{storageBackend: storageBackend}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storageStatus := "enabled"
	if h.storageBackend == storageBackendNone || h.storageBackend == "" {
		storageStatus = "disabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"storage": gin.H{
			"status":  storageStatus,
			"backend": h.storageBackend,
		},
	})
}
