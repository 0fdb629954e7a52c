package handler

import (
	"net/http"
	"time"

	"github.com/arhansuba/tg-trading-bot/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health — deep health check pinging every backing
// dependency (PostgreSQL, Redis). 200 when all respond, 503 otherwise.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status    string `json:"status"`
			LatencyMS int64  `json:"latency_ms"`
			Error     string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus, len(checkers))
		healthy := true

		for _, checker := range checkers {
			start := time.Now()
			err := checker.Ping(c.Request.Context())
			st := depStatus{Status: "up", LatencyMS: time.Since(start).Milliseconds()}
			if err != nil {
				st.Status = "down"
				st.Error = err.Error()
				healthy = false
			}
			deps[checker.Name()] = st
		}

		status, httpCode := "healthy", http.StatusOK
		if !healthy {
			status, httpCode = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
