package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn starts today's attendance, geofencing office check-ins.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut finishes today's attendance and derives total hours.
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// GetToday returns today's record or the "not clocked in" marker.
	GetToday(ctx context.Context, userID string) (TodayResponse, error)

	// Report builds the admin date-range report with per-user summaries.
	Report(ctx context.Context, filter ReportFilter) (ReportResponse, error)
}
