package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Conflicts are
// reported as 400 alongside validation failures; only the error code in
// the body tells them apart.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenMissing):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusBadRequest, dto.ErrorCodeAccountDisabled, "Account is disabled")

	case apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrNotCourseOwner):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case apperrors.Is(err, apperrors.ErrUserNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrAssignmentNotFound,
		apperrors.ErrGradeNotFound,
		apperrors.ErrResourceNotFound,
		apperrors.ErrBookingNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	case apperrors.Is(err, apperrors.ErrBadDepartment,
		apperrors.ErrBadTeacher,
		apperrors.ErrBadStudent,
		apperrors.ErrBadCourse,
		apperrors.ErrBadResource,
		apperrors.ErrBadTimeRange,
		apperrors.ErrNotEnrolled):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidReference, err.Error())

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	case apperrors.Is(err, apperrors.ErrAdminAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrCourseCodeExists,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrGradeAlreadyExists,
		apperrors.ErrGradeFinalized,
		apperrors.ErrAttendanceAlreadyMarked,
		apperrors.ErrBookingOverlap,
		apperrors.ErrBookingNotPending):
		respond(c, http.StatusBadRequest, dto.ErrorCodeConflict, err.Error())

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError reports a request-binding failure
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
