package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"quizhub/database"
	"quizhub/internal/dto"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Status godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /status [get]
func (c *HealthController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Backend is running!"})
}

// DBStatus godoc
// @Summary Store connectivity check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 503 {object} dto.ErrorResponse "Store unreachable"
// @Router /db_status [get]
func (c *HealthController) DBStatus(ctx *gin.Context) {
	if err := database.Ping(c.db); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Store connection failed.", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Store connected and accessible!"})
}
