package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.GetHealth)
}

// GetHealth
// @Summary Service health status
// @Description Reports database, cache and memory health
// @Tags system
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} HealthStatus
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	status, err := c.healthcheckService.CheckHealth()
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to check health"})
		return
	}

	if !status.Healthy {
		ctx.JSON(http.StatusServiceUnavailable, status)
		return
	}

	ctx.JSON(http.StatusOK, status)
}
