package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
)

type permissionRepository struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepository{db: db}
}

// Create implements permission.PermissionRepository.
func (r *permissionRepository) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO permissions (
			id, user_id, type, reason, from_date, to_date, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.UserID,
		p.Type,
		p.Reason,
		p.FromDate,
		p.ToDate,
		p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return p, nil
}

// GetByID implements permission.PermissionRepository.
func (r *permissionRepository) GetByID(ctx context.Context, id string) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, reason, from_date, to_date, status, approved_by,
			   created_at, updated_at
		FROM permissions
		WHERE id = $1
	`

	var p permission.Permission
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Type, &p.Reason, &p.FromDate, &p.ToDate, &p.Status, &p.ApprovedBy,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return permission.Permission{}, permission.ErrPermissionNotFound
		}
		return permission.Permission{}, fmt.Errorf("failed to get permission by ID: %w", err)
	}

	return p, nil
}

// ListByUser implements permission.PermissionRepository.
func (r *permissionRepository) ListByUser(ctx context.Context, userID string) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, reason, from_date, to_date, status, approved_by,
			   created_at, updated_at
		FROM permissions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions by user: %w", err)
	}
	defer rows.Close()

	var perms []permission.Permission
	for rows.Next() {
		var p permission.Permission
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Type, &p.Reason, &p.FromDate, &p.ToDate, &p.Status, &p.ApprovedBy,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permissions: %w", err)
	}

	return perms, nil
}

// ListAll implements permission.PermissionRepository.
func (r *permissionRepository) ListAll(ctx context.Context) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.user_id, p.type, p.reason, p.from_date, p.to_date, p.status, p.approved_by,
			   p.created_at, p.updated_at,
			   u.name AS user_name,
			   u.employee_id AS user_employee_id
		FROM permissions p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all permissions: %w", err)
	}
	defer rows.Close()

	var perms []permission.Permission
	for rows.Next() {
		var p permission.Permission
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Type, &p.Reason, &p.FromDate, &p.ToDate, &p.Status, &p.ApprovedBy,
			&p.CreatedAt, &p.UpdatedAt,
			&p.UserName, &p.UserEmployeeID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permissions: %w", err)
	}

	return perms, nil
}

// ListApprovedInRange implements permission.PermissionRepository.
func (r *permissionRepository) ListApprovedInRange(ctx context.Context, start, end time.Time) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, reason, from_date, to_date, status, approved_by,
			   created_at, updated_at
		FROM permissions
		WHERE status = $1 AND from_date <= $2 AND to_date >= $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, permission.StatusApproved, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved permissions in range: %w", err)
	}
	defer rows.Close()

	var perms []permission.Permission
	for rows.Next() {
		var p permission.Permission
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Type, &p.Reason, &p.FromDate, &p.ToDate, &p.Status, &p.ApprovedBy,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permissions: %w", err)
	}

	return perms, nil
}

// Decide implements permission.PermissionRepository.
func (r *permissionRepository) Decide(ctx context.Context, id string, status permission.Status, adminID string) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the decision one-shot even under concurrent
	// admin actions: only a still-pending row is updated.
	query := `
		UPDATE permissions
		SET status = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING id, user_id, type, reason, from_date, to_date, status, approved_by,
				  created_at, updated_at
	`

	var p permission.Permission
	err := q.QueryRow(ctx, query, id, status, adminID, permission.StatusPending).Scan(
		&p.ID, &p.UserID, &p.Type, &p.Reason, &p.FromDate, &p.ToDate, &p.Status, &p.ApprovedBy,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the id is unknown or it was already decided; let the
			// service tell the two apart.
			return permission.Permission{}, pgx.ErrNoRows
		}
		return permission.Permission{}, fmt.Errorf("failed to decide permission: %w", err)
	}

	return p, nil
}

// DeleteByUser implements permission.PermissionRepository.
func (r *permissionRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM permissions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete permissions for user: %w", err)
	}

	return nil
}
