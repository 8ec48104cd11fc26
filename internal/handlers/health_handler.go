package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/utils"
)

type HealthHandler struct {
	BaseHandler
	repo repositories.Repository
}

func NewHealthHandler(repo repositories.Repository, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		repo:        repo,
	}
}

// Liveness answers the root probe with plain text
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "The backend for test is running")
}

// Health reports service and database status
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "Connected"
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		dbStatus = "Disconnected"
		h.LogError(c, err, "Database ping failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"dbStatus":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
