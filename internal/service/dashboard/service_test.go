package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/dashboard"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database/databasetest"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

func newTestDashboardService() dashboard.DashboardService {
	db := databasetest.Connect()
	return NewDashboardService(postgresql.NewDashboardRepository(db))
}

func createDashboardTestUser(t *testing.T, ctx context.Context) user.User {
	t.Helper()
	db := databasetest.Connect()
	userRepo := postgresql.NewUserRepository(db)

	suffix := time.Now().UnixNano()
	created, err := userRepo.Create(ctx, user.User{
		Name:         "Dash User",
		Email:        fmt.Sprintf("dash-%d@example.com", suffix),
		PasswordHash: "not-a-real-hash",
		EmployeeID:   fmt.Sprintf("DSH-%d", suffix),
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return created
}

func clockInToday(t *testing.T, ctx context.Context, userID string, isLate bool, mode attendance.WorkMode) {
	t.Helper()
	db := databasetest.Connect()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	_, err := postgresql.NewAttendanceRepository(db).Create(ctx, attendance.Attendance{
		UserID:    userID,
		Date:      today,
		LoginTime: now,
		IsLate:    isLate,
		WorkMode:  mode,
		Status:    attendance.StatusPresent,
	})
	require.NoError(t, err)
}

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "permissions", "week_offs", "announcements", "users")

	office := createDashboardTestUser(t, ctx)
	remote := createDashboardTestUser(t, ctx)
	onLeave := createDashboardTestUser(t, ctx)
	absent := createDashboardTestUser(t, ctx)

	clockInToday(t, ctx, office.ID, true, attendance.WorkModeOffice)
	clockInToday(t, ctx, remote.ID, false, attendance.WorkModeRemote)

	db := databasetest.Connect()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Approved leave spanning today.
	leave, err := postgresql.NewPermissionRepository(db).Create(ctx, permission.Permission{
		UserID:   onLeave.ID,
		Type:     permission.TypeLeave,
		Reason:   "Vacation",
		FromDate: today.AddDate(0, 0, -1),
		ToDate:   today.AddDate(0, 0, 1),
		Status:   permission.StatusPending,
	})
	require.NoError(t, err)
	_, err = postgresql.NewPermissionRepository(db).Decide(ctx, leave.ID, permission.StatusApproved, office.ID)
	require.NoError(t, err)

	// An undecided request for the pending counter.
	_, err = postgresql.NewPermissionRepository(db).Create(ctx, permission.Permission{
		UserID:   absent.ID,
		Type:     permission.TypeEarlyLogout,
		Reason:   "Errand",
		FromDate: today,
		ToDate:   today,
		Status:   permission.StatusPending,
	})
	require.NoError(t, err)

	svc := newTestDashboardService()
	stats, err := svc.GetStats(ctx, dashboard.StatsFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.ActiveToday)
	assert.Equal(t, int64(1), stats.OfficeToday)
	assert.Equal(t, int64(1), stats.RemoteToday)
	assert.Equal(t, int64(1), stats.LateToday)
	assert.Equal(t, int64(1), stats.OnLeaveToday)
	assert.Equal(t, int64(0), stats.WeekOffToday)
	assert.Equal(t, int64(1), stats.PendingPermissions)
	// 4 total - 2 active - 1 on leave - 0 week off.
	assert.Equal(t, int64(1), stats.AbsentToday)
	assert.Empty(t, stats.Messages)

	require.NotNil(t, stats.Pagination)
	assert.Equal(t, int64(2), stats.Pagination.Total)
	assert.Equal(t, 10, stats.Pagination.Limit)
	assert.Equal(t, 0, stats.Pagination.Skip)
	assert.False(t, stats.Pagination.HasMore)
	require.Len(t, stats.RecentActivity, 2)
	// Newest login first.
	assert.Equal(t, remote.ID, stats.RecentActivity[0].UserID)
	assert.NotNil(t, stats.RecentActivity[0].UserName)
}

func TestDashboardService_GetStats_WeekOffToday(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "permissions", "week_offs", "announcements", "users")

	u := createDashboardTestUser(t, ctx)

	db := databasetest.Connect()
	_, err := postgresql.NewWeekOffRepository(db).Create(ctx, weekoff.WeekOff{
		UserID:    u.ID,
		DayOfWeek: int(time.Now().Weekday()),
		Type:      weekoff.TypeFull,
	})
	require.NoError(t, err)

	svc := newTestDashboardService()
	stats, err := svc.GetStats(ctx, dashboard.StatsFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.WeekOffToday)
	// The one user is off today, leaving nobody unaccounted for.
	assert.Equal(t, int64(0), stats.AbsentToday)
}

// failingWeekOffRepository breaks exactly one metric so the isolation
// contract can be observed: every other count must still come back.
type failingWeekOffRepository struct {
	dashboard.DashboardRepository
}

func (r *failingWeekOffRepository) CountWeekOff(ctx context.Context, dayOfWeek int) (int64, error) {
	return 0, errors.New("relation week_offs is unavailable")
}

func TestDashboardService_GetStats_MetricFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "permissions", "week_offs", "announcements", "users")

	u := createDashboardTestUser(t, ctx)
	clockInToday(t, ctx, u.ID, false, attendance.WorkModeRemote)

	db := databasetest.Connect()
	svc := NewDashboardService(&failingWeekOffRepository{
		DashboardRepository: postgresql.NewDashboardRepository(db),
	})

	stats, err := svc.GetStats(ctx, dashboard.StatsFilter{})

	// A broken metric never fails the whole request.
	require.NoError(t, err)

	// The other counts still come through.
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveToday)
	assert.Equal(t, int64(1), stats.RemoteToday)
	require.Len(t, stats.RecentActivity, 1)

	// The failed metric keeps its zero value and leaves one advisory.
	assert.Equal(t, int64(0), stats.WeekOffToday)
	require.Len(t, stats.Messages, 1)
	assert.Contains(t, stats.Messages[0], "Week Off:")
	assert.Contains(t, stats.Messages[0], "week_offs is unavailable")

	// The residual absent count uses the zero value, clamped at zero.
	assert.Equal(t, int64(0), stats.AbsentToday)
}

func TestDashboardService_GetStats_Pagination(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "permissions", "week_offs", "announcements", "users")

	for i := 0; i < 3; i++ {
		u := createDashboardTestUser(t, ctx)
		clockInToday(t, ctx, u.ID, false, attendance.WorkModeRemote)
	}

	svc := newTestDashboardService()
	stats, err := svc.GetStats(ctx, dashboard.StatsFilter{Limit: 2})

	require.NoError(t, err)
	require.NotNil(t, stats.Pagination)
	assert.Equal(t, int64(3), stats.Pagination.Total)
	assert.True(t, stats.Pagination.HasMore)
	assert.Len(t, stats.RecentActivity, 2)

	// Second page.
	stats, err = svc.GetStats(ctx, dashboard.StatsFilter{Limit: 2, Skip: 2})
	require.NoError(t, err)
	assert.False(t, stats.Pagination.HasMore)
	assert.Len(t, stats.RecentActivity, 1)
}
