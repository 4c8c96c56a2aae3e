package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/dashboard"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) countOne(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountWorkforce implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountWorkforce(ctx context.Context) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM users
		WHERE role IN ('Employee', 'HR_Admin', 'Admin', 'Manager_Admin')
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to count workforce: %w", err)
	}
	return count, nil
}

// CountPresent implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPresent(ctx context.Context, date time.Time) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE date = $1 AND status IN ($2, $3)
	`, date, attendance.StatusPresent, attendance.StatusHalfDay)
	if err != nil {
		return 0, fmt.Errorf("failed to count present: %w", err)
	}
	return count, nil
}

// CountPresentByMode implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPresentByMode(ctx context.Context, date time.Time, mode attendance.WorkMode) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE date = $1 AND work_mode = $2 AND status IN ($3, $4)
	`, date, mode, attendance.StatusPresent, attendance.StatusHalfDay)
	if err != nil {
		return 0, fmt.Errorf("failed to count present by mode: %w", err)
	}
	return count, nil
}

// CountLate implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountLate(ctx context.Context, date time.Time) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE date = $1 AND is_late = TRUE
	`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count late: %w", err)
	}
	return count, nil
}

// CountOnLeave implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountOnLeave(ctx context.Context, date time.Time) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM permissions
		WHERE status = $1 AND type = $2 AND from_date <= $3 AND to_date >= $3
	`, permission.StatusApproved, permission.TypeLeave, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count on leave: %w", err)
	}
	return count, nil
}

// CountWeekOff implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountWeekOff(ctx context.Context, dayOfWeek int) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM week_offs WHERE day_of_week = $1
	`, dayOfWeek)
	if err != nil {
		return 0, fmt.Errorf("failed to count week-offs: %w", err)
	}
	return count, nil
}

// CountPendingPermissions implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingPermissions(ctx context.Context) (int64, error) {
	count, err := r.countOne(ctx, `
		SELECT COUNT(*) FROM permissions WHERE status = $1
	`, permission.StatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending permissions: %w", err)
	}
	return count, nil
}

// RecentActivity implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentActivity(ctx context.Context, date time.Time, limit, skip int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1`, date).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count today's attendances: %w", err)
	}

	query := `
		SELECT a.id, a.user_id, a.date, a.login_time, a.logout_time, a.total_hours,
			   a.is_late, a.work_mode, a.status, a.created_at, a.updated_at,
			   u.name AS user_name,
			   u.employee_id AS user_employee_id,
			   u.designation AS user_designation,
			   u.profile_image AS user_profile_image
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY a.login_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, date, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	var atts []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.LoginTime, &att.LogoutTime, &att.TotalHours,
			&att.IsLate, &att.WorkMode, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserEmployeeID, &att.UserDesignation, &att.UserProfileImg,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan recent activity: %w", err)
		}
		atts = append(atts, att)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate recent activity: %w", err)
	}

	return atts, total, nil
}
