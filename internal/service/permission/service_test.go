package permission

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database/databasetest"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

func newTestPermissionService() permission.PermissionService {
	db := databasetest.Connect()
	return NewPermissionService(
		db,
		postgresql.NewPermissionRepository(db),
		postgresql.NewAnnouncementRepository(db),
	)
}

func createPermissionTestUser(t *testing.T, ctx context.Context, role user.Role) user.User {
	t.Helper()
	db := databasetest.Connect()
	userRepo := postgresql.NewUserRepository(db)

	suffix := time.Now().UnixNano()
	created, err := userRepo.Create(ctx, user.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("perm-%d@example.com", suffix),
		PasswordHash: "not-a-real-hash",
		EmployeeID:   fmt.Sprintf("PRM-%d", suffix),
		Role:         role,
	})
	require.NoError(t, err)
	return created
}

func TestPermissionService_Create(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "permissions", "announcements", "users")

	u := createPermissionTestUser(t, ctx, user.RoleEmployee)
	svc := newTestPermissionService()

	result, err := svc.Create(ctx, permission.CreatePermissionRequest{
		UserID:   u.ID,
		Type:     string(permission.TypeLeave),
		Reason:   "Family function",
		FromDate: "2025-06-10",
		ToDate:   "2025-06-12",
	})

	require.NoError(t, err)
	assert.Equal(t, string(permission.StatusPending), result.Status)
	assert.Equal(t, "2025-06-10", result.FromDate)
	assert.Equal(t, "2025-06-12", result.ToDate)
	assert.Nil(t, result.ApprovedBy)
}

func TestPermissionService_Create_InvalidType(t *testing.T) {
	svc := newTestPermissionService()

	_, err := svc.Create(context.Background(), permission.CreatePermissionRequest{
		UserID:   "any",
		Type:     "Vacation",
		Reason:   "Trip",
		FromDate: "2025-06-10",
		ToDate:   "2025-06-12",
	})

	assert.Error(t, err)
}

func TestPermissionService_Decide_Approve(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "permissions", "announcements", "users")

	employee := createPermissionTestUser(t, ctx, user.RoleEmployee)
	admin := createPermissionTestUser(t, ctx, user.RoleAdmin)
	svc := newTestPermissionService()

	created, err := svc.Create(ctx, permission.CreatePermissionRequest{
		UserID:   employee.ID,
		Type:     string(permission.TypeLeave),
		Reason:   "Medical",
		FromDate: "2025-06-10",
		ToDate:   "2025-06-10",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, permission.DecidePermissionRequest{
		ID:      created.ID,
		AdminID: admin.ID,
		Status:  string(permission.StatusApproved),
	})

	require.NoError(t, err)
	assert.Equal(t, string(permission.StatusApproved), decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, admin.ID, *decided.ApprovedBy)

	// Exactly one targeted announcement reaches the applicant.
	db := databasetest.Connect()
	announcements, err := postgresql.NewAnnouncementRepository(db).ListVisibleTo(ctx, employee.ID, 10)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, announcement.TargetIndividual, announcements[0].Target)
	assert.Equal(t, "Permission Approved", announcements[0].Title)
	assert.Equal(t, "Your request for Leave has been approved by the administration.", announcements[0].Message)
}

func TestPermissionService_Decide_Reject(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "permissions", "announcements", "users")

	employee := createPermissionTestUser(t, ctx, user.RoleEmployee)
	admin := createPermissionTestUser(t, ctx, user.RoleHRAdmin)
	svc := newTestPermissionService()

	created, err := svc.Create(ctx, permission.CreatePermissionRequest{
		UserID:   employee.ID,
		Type:     string(permission.TypeLateLogin),
		Reason:   "Traffic",
		FromDate: "2025-06-10",
		ToDate:   "2025-06-10",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, permission.DecidePermissionRequest{
		ID:      created.ID,
		AdminID: admin.ID,
		Status:  string(permission.StatusRejected),
	})

	require.NoError(t, err)
	assert.Equal(t, string(permission.StatusRejected), decided.Status)

	db := databasetest.Connect()
	announcements, err := postgresql.NewAnnouncementRepository(db).ListVisibleTo(ctx, employee.ID, 10)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, "Permission Rejected", announcements[0].Title)
	assert.Equal(t, "Your request for Late_Login has been rejected by the administration.", announcements[0].Message)
}

func TestPermissionService_Decide_Twice(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "permissions", "announcements", "users")

	employee := createPermissionTestUser(t, ctx, user.RoleEmployee)
	admin := createPermissionTestUser(t, ctx, user.RoleAdmin)
	svc := newTestPermissionService()

	created, err := svc.Create(ctx, permission.CreatePermissionRequest{
		UserID:   employee.ID,
		Type:     string(permission.TypeLeave),
		Reason:   "Medical",
		FromDate: "2025-06-10",
		ToDate:   "2025-06-10",
	})
	require.NoError(t, err)

	req := permission.DecidePermissionRequest{
		ID:      created.ID,
		AdminID: admin.ID,
		Status:  string(permission.StatusApproved),
	}
	_, err = svc.Decide(ctx, req)
	require.NoError(t, err)

	_, err = svc.Decide(ctx, req)
	assert.ErrorIs(t, err, permission.ErrAlreadyDecided)

	// The failed second decision must not produce another announcement.
	db := databasetest.Connect()
	announcements, err := postgresql.NewAnnouncementRepository(db).ListVisibleTo(ctx, employee.ID, 10)
	require.NoError(t, err)
	assert.Len(t, announcements, 1)
}

func TestPermissionService_Decide_NotFound(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "permissions", "announcements", "users")

	admin := createPermissionTestUser(t, ctx, user.RoleAdmin)
	svc := newTestPermissionService()

	_, err := svc.Decide(ctx, permission.DecidePermissionRequest{
		ID:      "b7c6cbb0-0000-0000-0000-000000000000",
		AdminID: admin.ID,
		Status:  string(permission.StatusApproved),
	})

	assert.ErrorIs(t, err, permission.ErrPermissionNotFound)
}

func TestPermissionService_ListMineAndAll(t *testing.T) {
	ctx := context.Background()
	databasetest.Truncate(t, ctx, "permissions", "announcements", "users")

	first := createPermissionTestUser(t, ctx, user.RoleEmployee)
	second := createPermissionTestUser(t, ctx, user.RoleEmployee)
	svc := newTestPermissionService()

	for _, u := range []user.User{first, second} {
		_, err := svc.Create(ctx, permission.CreatePermissionRequest{
			UserID:   u.ID,
			Type:     string(permission.TypeEarlyLogout),
			Reason:   "Appointment",
			FromDate: "2025-06-10",
			ToDate:   "2025-06-10",
		})
		require.NoError(t, err)
	}

	mine, err := svc.ListMine(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].UserID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// The admin view carries requester identity.
	require.NotNil(t, all[0].UserName)
}
