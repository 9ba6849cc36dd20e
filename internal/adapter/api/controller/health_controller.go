package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
)

// HealthController responde à verificação de saúde
type HealthController struct {
	version string
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Version: c.version})
}
