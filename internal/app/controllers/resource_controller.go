package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// ResourceController handles bookable facility operations
type ResourceController struct {
	resourceService *services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// CreateResource handles resource creation
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resource, err := c.resourceService.CreateResource(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resource))
}

// GetResource retrieves a resource by ID
func (c *ResourceController) GetResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resource, err := c.resourceService.GetResource(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resource))
}

// ListResources retrieves resources; inactive ones are hidden from
// non-admins
func (c *ResourceController) ListResources(ctx *gin.Context) {
	actor := middleware.GetActor(ctx)
	resources, err := c.resourceService.ListResources(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resources))
}

// UpdateResource handles partial resource updates
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resource, err := c.resourceService.UpdateResource(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resource))
}

// DeleteResource removes a resource
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
