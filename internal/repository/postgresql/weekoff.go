package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
)

type weekOffRepository struct {
	db *database.DB
}

func NewWeekOffRepository(db *database.DB) weekoff.WeekOffRepository {
	return &weekOffRepository{db: db}
}

// Create implements weekoff.WeekOffRepository.
func (r *weekOffRepository) Create(ctx context.Context, w weekoff.WeekOff) (weekoff.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	query := `
		INSERT INTO week_offs (id, user_id, day_of_week, type)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, w.ID, w.UserID, w.DayOfWeek, w.Type).Scan(&w.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// (user_id, day_of_week) already taken; the service resolves
			// the assignee name for the error message.
			return weekoff.WeekOff{}, &weekoff.AlreadyAssignedError{}
		}
		return weekoff.WeekOff{}, fmt.Errorf("failed to create week-off: %w", err)
	}

	return w, nil
}

// GetByUserAndDay implements weekoff.WeekOffRepository.
func (r *weekOffRepository) GetByUserAndDay(ctx context.Context, userID string, dayOfWeek int) (*weekoff.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, day_of_week, type, created_at
		FROM week_offs
		WHERE user_id = $1 AND day_of_week = $2
		LIMIT 1
	`

	var w weekoff.WeekOff
	err := q.QueryRow(ctx, query, userID, dayOfWeek).Scan(
		&w.ID, &w.UserID, &w.DayOfWeek, &w.Type, &w.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no assignment for this user/day
		}
		return nil, fmt.Errorf("failed to get week-off by user and day: %w", err)
	}

	return &w, nil
}

// List implements weekoff.WeekOffRepository.
func (r *weekOffRepository) List(ctx context.Context) ([]weekoff.WeekOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.user_id, w.day_of_week, w.type, w.created_at,
			   u.name AS user_name,
			   u.employee_id AS user_employee_id
		FROM week_offs w
		LEFT JOIN users u ON u.id = w.user_id
		ORDER BY w.day_of_week ASC, u.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list week-offs: %w", err)
	}
	defer rows.Close()

	var weekOffs []weekoff.WeekOff
	for rows.Next() {
		var w weekoff.WeekOff
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.DayOfWeek, &w.Type, &w.CreatedAt,
			&w.UserName, &w.UserEmployeeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan week-off: %w", err)
		}
		weekOffs = append(weekOffs, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate week-offs: %w", err)
	}

	return weekOffs, nil
}

// Delete implements weekoff.WeekOffRepository.
func (r *weekOffRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM week_offs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete week-off: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return weekoff.ErrWeekOffNotFound
	}

	return nil
}

// DeleteByUser implements weekoff.WeekOffRepository.
func (r *weekOffRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM week_offs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete week-offs for user: %w", err)
	}

	return nil
}
