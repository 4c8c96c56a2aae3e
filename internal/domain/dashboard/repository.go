package dashboard

import (
	"context"
	"time"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
)

// DashboardRepository defines the independent count queries behind the admin
// stats endpoint. Each method is one query so the service can attempt and
// fail them in isolation.
type DashboardRepository interface {
	// CountWorkforce counts users across all four roles.
	CountWorkforce(ctx context.Context) (int64, error)

	// CountPresent counts Present or Half_Day records on a date.
	CountPresent(ctx context.Context, date time.Time) (int64, error)

	// CountPresentByMode splits the present count by work mode.
	CountPresentByMode(ctx context.Context, date time.Time, mode attendance.WorkMode) (int64, error)

	// CountLate counts late-flagged records on a date.
	CountLate(ctx context.Context, date time.Time) (int64, error)

	// CountOnLeave counts approved Leave permissions whose range spans the date.
	CountOnLeave(ctx context.Context, date time.Time) (int64, error)

	// CountWeekOff counts assignments matching the date's weekday.
	CountWeekOff(ctx context.Context, dayOfWeek int) (int64, error)

	// CountPendingPermissions counts undecided requests.
	CountPendingPermissions(ctx context.Context) (int64, error)

	// RecentActivity pages a date's records by login time descending,
	// joined with user identity, and reports the total for that date.
	RecentActivity(ctx context.Context, date time.Time, limit, skip int) ([]attendance.Attendance, int64, error)
}
