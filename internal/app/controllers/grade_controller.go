package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// GradeController handles grading operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// CreateGrade records a grade for a student on an assignment
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	actor := middleware.GetActor(ctx)
	grade, err := c.gradeService.CreateGrade(ctx.Request.Context(), actor, assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grade))
}

// ListGrades retrieves the grades of an assignment
func (c *GradeController) ListGrades(ctx *gin.Context) {
	assignmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	actor := middleware.GetActor(ctx)
	grades, err := c.gradeService.ListGrades(ctx.Request.Context(), actor, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// UpdateGrade handles partial grade updates and finalization
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	actor := middleware.GetActor(ctx)
	grade, err := c.gradeService.UpdateGrade(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}
