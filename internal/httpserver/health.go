package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"specialist-router/internal/model"
	"specialist-router/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "specialist-router"
)

// healthResp is the public /health body.
type healthResp struct {
	Status    string            `json:"status"`
	Agents    []model.AgentType `json:"agents"`
	Timestamp string            `json:"timestamp"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Report service health and the specialists it can route to
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.Flat(c, http.StatusOK, healthResp{
		Status:    "healthy",
		Agents:    srv.agents.Types(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// readyCheck handles readiness check, returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
