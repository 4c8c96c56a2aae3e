package weekoff

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database/databasetest"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

func newTestWeekOffService() weekoff.WeekOffService {
	db := databasetest.Connect()
	return NewWeekOffService(
		db,
		postgresql.NewWeekOffRepository(db),
		postgresql.NewAnnouncementRepository(db),
		postgresql.NewUserRepository(db),
	)
}

func createWeekOffTestUser(t *testing.T, ctx context.Context, name string) user.User {
	t.Helper()
	db := databasetest.Connect()
	userRepo := postgresql.NewUserRepository(db)

	suffix := time.Now().UnixNano()
	created, err := userRepo.Create(ctx, user.User{
		Name:         name,
		Email:        fmt.Sprintf("weekoff-%d@example.com", suffix),
		PasswordHash: "not-a-real-hash",
		EmployeeID:   fmt.Sprintf("WKO-%d", suffix),
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return created
}

func TestWeekOffService_Assign(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "week_offs", "announcements", "users")

	employee := createWeekOffTestUser(t, ctx, "Priya")
	admin := createWeekOffTestUser(t, ctx, "Admin")
	svc := newTestWeekOffService()

	result, err := svc.Assign(ctx, weekoff.AssignWeekOffRequest{
		AdminID:   admin.ID,
		UserID:    employee.ID,
		DayOfWeek: 0,
		Type:      string(weekoff.TypeFull),
	})

	require.NoError(t, err)
	assert.Equal(t, employee.ID, result.UserID)
	assert.Equal(t, "Sunday", result.DayName)
	assert.Equal(t, string(weekoff.TypeFull), result.Type)

	// The assignee gets exactly one targeted announcement.
	db := databasetest.Connect()
	announcements, err := postgresql.NewAnnouncementRepository(db).ListVisibleTo(ctx, employee.ID, 10)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, announcement.TargetIndividual, announcements[0].Target)
	assert.Equal(t, "Week-Off Assigned", announcements[0].Title)
	assert.Equal(t, "You have been assigned a Full week-off on every Sunday.", announcements[0].Message)
}

func TestWeekOffService_Assign_Duplicate(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "week_offs", "announcements", "users")

	employee := createWeekOffTestUser(t, ctx, "Priya")
	admin := createWeekOffTestUser(t, ctx, "Admin")
	svc := newTestWeekOffService()

	req := weekoff.AssignWeekOffRequest{
		AdminID:   admin.ID,
		UserID:    employee.ID,
		DayOfWeek: 3,
		Type:      string(weekoff.TypeAlternate),
	}
	_, err := svc.Assign(ctx, req)
	require.NoError(t, err)

	_, err = svc.Assign(ctx, req)
	var dupErr *weekoff.AlreadyAssignedError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Priya", dupErr.AssigneeName)
}

func TestWeekOffService_Assign_UnknownUser(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "week_offs", "announcements", "users")

	admin := createWeekOffTestUser(t, ctx, "Admin")
	svc := newTestWeekOffService()

	_, err := svc.Assign(ctx, weekoff.AssignWeekOffRequest{
		AdminID:   admin.ID,
		UserID:    "11111111-0000-0000-0000-000000000000",
		DayOfWeek: 1,
		Type:      string(weekoff.TypeFull),
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestWeekOffService_Assign_InvalidDay(t *testing.T) {
	svc := newTestWeekOffService()

	_, err := svc.Assign(context.Background(), weekoff.AssignWeekOffRequest{
		AdminID:   "admin",
		UserID:    "someone",
		DayOfWeek: 7,
		Type:      string(weekoff.TypeFull),
	})

	assert.Error(t, err)
}

func TestWeekOffService_RemoveAndList(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "week_offs", "announcements", "users")

	employee := createWeekOffTestUser(t, ctx, "Priya")
	admin := createWeekOffTestUser(t, ctx, "Admin")
	svc := newTestWeekOffService()

	created, err := svc.Assign(ctx, weekoff.AssignWeekOffRequest{
		AdminID:   admin.ID,
		UserID:    employee.ID,
		DayOfWeek: 5,
		Type:      string(weekoff.TypeFull),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Friday", list[0].DayName)

	require.NoError(t, svc.Remove(ctx, created.ID))

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Removing a missing assignment reports not found.
	err = svc.Remove(ctx, created.ID)
	assert.ErrorIs(t, err, weekoff.ErrWeekOffNotFound)
}
