package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// BookingController handles resource booking operations
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateBooking reserves a resource for the authenticated user
func (c *BookingController) CreateBooking(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	actor := middleware.GetActor(ctx)
	booking, err := c.bookingService.CreateBooking(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(booking))
}

// ListBookings retrieves bookings; admins see all, filtered by
// resourceId and status, others only their own
func (c *BookingController) ListBookings(ctx *gin.Context) {
	filter := dto.BookingFilter{
		ResourceID: queryInt64(ctx, "resourceId"),
		Status:     queryString(ctx, "status"),
	}

	actor := middleware.GetActor(ctx)
	bookings, err := c.bookingService.ListBookings(ctx.Request.Context(), actor, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(bookings))
}

// ResolveBooking approves or rejects a pending booking
func (c *BookingController) ResolveBooking(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	booking, err := c.bookingService.ResolveBooking(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(booking))
}

// DeleteBooking removes a booking
func (c *BookingController) DeleteBooking(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	actor := middleware.GetActor(ctx)
	if err := c.bookingService.DeleteBooking(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
