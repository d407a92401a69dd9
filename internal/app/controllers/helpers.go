package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
)

// parseIDParam parses a numeric path parameter. On failure it writes a
// validation error response and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// queryInt64 parses an optional numeric query parameter, returning nil
// when absent or malformed
func queryInt64(ctx *gin.Context, name string) *int64 {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// queryString returns an optional string query parameter, nil when absent
func queryString(ctx *gin.Context, name string) *string {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// queryBool parses an optional boolean query parameter, nil when absent
// or malformed
func queryBool(ctx *gin.Context, name string) *bool {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
