package response

import (
	"errors"
	"net/http"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/auth"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unknown errors get a
// generic 500 so internal details never reach the client.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	var outsideRadius *attendance.OutsideRadiusError
	if errors.As(err, &outsideRadius) {
		BadRequest(w, outsideRadius.Error())
		return
	}

	var alreadyAssigned *weekoff.AlreadyAssignedError
	if errors.As(err, &alreadyAssigned) {
		BadRequest(w, alreadyAssigned.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserExists):
		BadRequest(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveRecord):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrLocationRequired):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Permission domain errors
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission request not found")
	case errors.Is(err, permission.ErrAlreadyDecided):
		BadRequest(w, err.Error())

	// Week-off domain errors
	case errors.Is(err, weekoff.ErrWeekOffNotFound):
		NotFound(w, "Week-off not found")

	// Announcement domain errors
	case errors.Is(err, announcement.ErrRecipientNotFound):
		NotFound(w, "Recipient user not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
