package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyro-hq/tyro-backend-go/internal/config"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database/databasetest"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

var testOffices = config.OfficeConfig{
	Locations: []config.OfficeLocation{
		{Name: "Main Office", Latitude: 13.119129, Longitude: 80.15127},
		{Name: "Secondary Office", Latitude: 13.1068797, Longitude: 79.9229042},
	},
	RadiusMeters: 100,
}

func newTestAttendanceService() attendance.AttendanceService {
	db := databasetest.Connect()
	return NewAttendanceService(
		postgresql.NewAttendanceRepository(db),
		postgresql.NewPermissionRepository(db),
		postgresql.NewUserRepository(db),
		testOffices,
	)
}

func createAttendanceTestUser(t *testing.T, ctx context.Context) user.User {
	t.Helper()
	db := databasetest.Connect()
	userRepo := postgresql.NewUserRepository(db)

	suffix := time.Now().UnixNano()
	created, err := userRepo.Create(ctx, user.User{
		Name:         "Test Employee",
		Email:        fmt.Sprintf("employee-%d@example.com", suffix),
		PasswordHash: "not-a-real-hash",
		EmployeeID:   fmt.Sprintf("EMP-%d", suffix),
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return created
}

func TestIsLate(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before nine", time.Date(2025, 6, 2, 8, 59, 0, 0, time.Local), false},
		{"exactly nine", time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local), false},
		{"one past nine", time.Date(2025, 6, 2, 9, 1, 0, 0, time.Local), true},
		{"ten o'clock", time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local), true},
		{"midnight", time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLate(tt.at))
		})
	}
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 8.0, RoundHours(8*time.Hour))
	assert.Equal(t, 8.5, RoundHours(8*time.Hour+30*time.Minute))
	assert.Equal(t, 0.25, RoundHours(15*time.Minute))
	// 7h47m = 7.7833... hours
	assert.Equal(t, 7.78, RoundHours(7*time.Hour+47*time.Minute))
	assert.Equal(t, 0.0, RoundHours(0))
}

func TestDayStart(t *testing.T) {
	at := time.Date(2025, 6, 2, 14, 35, 12, 999, time.Local)
	start := DayStart(at)

	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, time.June, start.Month())
	assert.Equal(t, 2, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())
}

func TestMinOfficeDistance(t *testing.T) {
	// At the main office, the minimum distance is zero even though the
	// secondary office is kilometers away.
	d := MinOfficeDistance(13.119129, 80.15127, testOffices.Locations)
	assert.InDelta(t, 0, d, 0.001)

	// Between the two offices, the nearer one wins.
	d = MinOfficeDistance(13.1068797, 79.9229042, testOffices.Locations)
	assert.InDelta(t, 0, d, 0.001)
}

func TestAttendanceService_ClockIn_Remote(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID: u.ID,
		Mode:   string(attendance.WorkModeRemote),
	})

	require.NoError(t, err)
	assert.Equal(t, u.ID, result.UserID)
	assert.Equal(t, string(attendance.WorkModeRemote), result.WorkMode)
	assert.Equal(t, string(attendance.StatusPresent), result.Status)
	assert.Nil(t, result.LogoutTime)
}

func TestAttendanceService_ClockIn_Twice(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	req := attendance.ClockInRequest{UserID: u.ID, Mode: string(attendance.WorkModeRemote)}
	_, err := svc.ClockIn(ctx, req)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceService_ClockIn_OfficeWithoutLocation(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID: u.ID,
		Mode:   string(attendance.WorkModeOffice),
	})

	assert.ErrorIs(t, err, attendance.ErrLocationRequired)
}

func TestAttendanceService_ClockIn_OfficeInsideRadius(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:   u.ID,
		Mode:     string(attendance.WorkModeOffice),
		Location: &attendance.Coordinates{Latitude: 13.119129, Longitude: 80.15127},
	})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.WorkModeOffice), result.WorkMode)
}

func TestAttendanceService_ClockIn_OfficeOutsideRadius(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	// Roughly a kilometer north of the main office.
	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:   u.ID,
		Mode:     string(attendance.WorkModeOffice),
		Location: &attendance.Coordinates{Latitude: 13.128129, Longitude: 80.15127},
	})

	var outsideErr *attendance.OutsideRadiusError
	require.ErrorAs(t, err, &outsideErr)
	assert.Greater(t, outsideErr.MinDistanceMeters, testOffices.RadiusMeters)
	assert.Equal(t, testOffices.RadiusMeters, outsideErr.MaxAllowedMeters)
}

func TestAttendanceService_ClockIn_OfficeExactlyAtRadius(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)

	// A radius equal to the measured distance admits the clock-in;
	// only strictly-greater distances are rejected.
	at := attendance.Coordinates{Latitude: 13.1195, Longitude: 80.15127}
	offices := config.OfficeConfig{
		Locations:    testOffices.Locations,
		RadiusMeters: MinOfficeDistance(at.Latitude, at.Longitude, testOffices.Locations),
	}

	db := databasetest.Connect()
	svc := NewAttendanceService(
		postgresql.NewAttendanceRepository(db),
		postgresql.NewPermissionRepository(db),
		postgresql.NewUserRepository(db),
		offices,
	)

	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		UserID:   u.ID,
		Mode:     string(attendance.WorkModeOffice),
		Location: &at,
	})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.WorkModeOffice), result.WorkMode)
}

func TestAttendanceService_ClockOut(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: u.ID, Mode: string(attendance.WorkModeRemote)})
	require.NoError(t, err)

	result, err := svc.ClockOut(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, result.LogoutTime)
	require.NotNil(t, result.TotalHours)
	assert.GreaterOrEqual(t, *result.TotalHours, 0.0)

	// A second clock-out is rejected.
	_, err = svc.ClockOut(ctx, u.ID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ClockOut(ctx, u.ID)
	assert.ErrorIs(t, err, attendance.ErrNoActiveRecord)
}

func TestAttendanceService_GetToday(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	// Before clock-in.
	today, err := svc.GetToday(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, today.ClockedIn)
	assert.Nil(t, today.Attendance)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{UserID: u.ID, Mode: string(attendance.WorkModeRemote)})
	require.NoError(t, err)

	// After clock-in.
	today, err = svc.GetToday(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, today.ClockedIn)
	require.NotNil(t, today.Attendance)
	assert.Equal(t, u.ID, today.Attendance.UserID)
}

func TestAttendanceService_Report(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "attendances", "permissions", "users")

	u := createAttendanceTestUser(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{UserID: u.ID, Mode: string(attendance.WorkModeRemote)})
	require.NoError(t, err)

	report, err := svc.Report(ctx, attendance.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Results)
	require.Len(t, report.Summary, 1)
	assert.Equal(t, u.ID, report.Summary[0].UserID)
	assert.Equal(t, 1, report.Summary[0].Present)
}

func TestAttendanceService_Report_InvalidDate(t *testing.T) {
	svc := newTestAttendanceService()

	bad := "02-06-2025"
	_, err := svc.Report(context.Background(), attendance.ReportFilter{StartDate: &bad})
	assert.Error(t, err)
}
