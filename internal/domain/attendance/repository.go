package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance row. The (user_id, date) unique
	// constraint is the only safeguard against concurrent double clock-ins;
	// a violation surfaces as ErrAlreadyClockedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a date, or nil.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// SetClockOut finalizes a record with logout time and derived hours.
	SetClockOut(ctx context.Context, id string, logoutTime time.Time, totalHours float64) (Attendance, error)

	// ListRange retrieves all records in [start, end] newest-first,
	// joined with user identity for the report.
	ListRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// DeleteByUser removes all attendance rows for a user. Part of the
	// user-deletion cascade; must run inside the caller's transaction.
	DeleteByUser(ctx context.Context, userID string) error
}
