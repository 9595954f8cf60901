package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "ok"
	HealthVersion = "1.0.0"
	ServiceName   = "darkwave-task-manager"
)

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// healthCheck godoc
// @Summary      Health check
// @Description  Returns service health status
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    HealthMessage,
		Service:   ServiceName,
		Version:   HealthVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// readyCheck godoc
// @Summary      Readiness check
// @Description  Returns whether the service is ready to accept traffic
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "ready",
		Service:   ServiceName,
		Version:   HealthVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// liveCheck godoc
// @Summary      Liveness check
// @Description  Returns whether the service process is alive
// @Tags         system
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:    "alive",
		Service:   ServiceName,
		Version:   HealthVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
