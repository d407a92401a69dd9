package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// AssignmentController handles assignment operations
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// CreateAssignment creates an assignment under a course
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	actor := middleware.GetActor(ctx)
	assignment, err := c.assignmentService.CreateAssignment(ctx.Request.Context(), actor, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// GetAssignment retrieves an assignment by ID
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetAssignment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// ListAssignments retrieves the assignments of a course
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListAssignments(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignments))
}

// UpdateAssignment handles partial assignment updates
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	actor := middleware.GetActor(ctx)
	assignment, err := c.assignmentService.UpdateAssignment(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// DeleteAssignment removes an assignment
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	actor := middleware.GetActor(ctx)
	if err := c.assignmentService.DeleteAssignment(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
