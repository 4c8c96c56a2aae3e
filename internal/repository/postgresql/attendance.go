package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, user_id, date, login_time, is_late, work_mode, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.Date,
		att.LoginTime,
		att.IsLate,
		att.WorkMode,
		att.Status,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			// The (user_id, date) constraint lost a race with another
			// clock-in; exactly one attempt wins.
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, login_time, logout_time, total_hours,
			   is_late, work_mode, status, created_at, updated_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.LoginTime, &att.LogoutTime, &att.TotalHours,
		&att.IsLate, &att.WorkMode, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this user/date
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetClockOut(ctx context.Context, id string, logoutTime time.Time, totalHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET logout_time = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, date, login_time, logout_time, total_hours,
				  is_late, work_mode, status, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id, logoutTime, totalHours).Scan(
		&att.ID, &att.UserID, &att.Date, &att.LoginTime, &att.LogoutTime, &att.TotalHours,
		&att.IsLate, &att.WorkMode, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set clock-out: %w", err)
	}

	return att, nil
}

// ListRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.login_time, a.logout_time, a.total_hours,
			   a.is_late, a.work_mode, a.status, a.created_at, a.updated_at,
			   u.name AS user_name,
			   u.employee_id AS user_employee_id,
			   u.designation AS user_designation,
			   u.department AS user_department,
			   u.joining_date AS user_joining_date
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date DESC, a.login_time DESC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances in range: %w", err)
	}
	defer rows.Close()

	var atts []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.LoginTime, &att.LogoutTime, &att.TotalHours,
			&att.IsLate, &att.WorkMode, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserEmployeeID, &att.UserDesignation,
			&att.UserDepartment, &att.UserJoiningDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		atts = append(atts, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return atts, nil
}

// DeleteByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendances WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete attendances for user: %w", err)
	}

	return nil
}
