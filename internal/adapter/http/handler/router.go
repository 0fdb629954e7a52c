package handler

import (
	"github.com/arhansuba/tg-trading-bot/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// SetupRouter initialises the Gin engine for the operational HTTP surface.
// The bot has no user-facing HTTP API; this serves /health only.
func SetupRouter(checkers ...ports.HealthChecker) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", HealthCheck(checkers...))
	return r
}
