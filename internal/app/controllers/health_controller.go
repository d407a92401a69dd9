package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models/dto"
)

// HealthController reports process and database liveness
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Health reports that the process is serving requests
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
}

// HealthDB reports database connectivity
func (c *HealthController) HealthDB(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Database unreachable").
			WithDetails(err.Error())
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok", "database": "up"}))
}
