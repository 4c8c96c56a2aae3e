package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/validator"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, employee_id, role, department, designation,
	   dob, sex, address, employee_type, joining_date, shift_time, profile_image,
	   created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EmployeeID, &u.Role, &u.Department, &u.Designation,
		&u.DOB, &u.Sex, &u.Address, &u.EmployeeType, &u.JoiningDate, &u.ShiftTime, &u.ProfileImage,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (
			id, name, email, password_hash, employee_id, role, department, designation,
			dob, sex, address, employee_type, joining_date, shift_time, profile_image
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.EmployeeID,
		newUser.Role,
		newUser.Department,
		newUser.Designation,
		newUser.DOB,
		newUser.Sex,
		newUser.Address,
		newUser.EmployeeType,
		newUser.JoiningDate,
		newUser.ShiftTime,
		newUser.ProfileImage,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ExistsByEmailOrEmployeeID implements user.UserRepository.
func (r *userRepository) ExistsByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR employee_id = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UpdateProfile implements user.UserRepository.
func (r *userRepository) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name          = COALESCE($2, name),
			dob           = COALESCE($3, dob),
			sex           = COALESCE($4, sex),
			address       = COALESCE($5, address),
			employee_type = COALESCE($6, employee_type),
			profile_image = COALESCE($7, profile_image),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query,
		req.UserID,
		req.Name,
		parseDatePtr(req.DOB),
		req.Sex,
		req.Address,
		req.EmployeeType,
		req.ProfileImage,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return u, nil
}

// UpdateEmployee implements user.UserRepository.
func (r *userRepository) UpdateEmployee(ctx context.Context, req user.UpdateEmployeeRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name          = COALESCE($2, name),
			email         = COALESCE($3, email),
			role          = COALESCE($4, role),
			employee_id   = COALESCE($5, employee_id),
			department    = COALESCE($6, department),
			designation   = COALESCE($7, designation),
			dob           = COALESCE($8, dob),
			sex           = COALESCE($9, sex),
			address       = COALESCE($10, address),
			employee_type = COALESCE($11, employee_type),
			joining_date  = COALESCE($12, joining_date),
			shift_time    = COALESCE($13, shift_time),
			profile_image = COALESCE($14, profile_image),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query,
		req.ID,
		req.Name,
		req.Email,
		req.Role,
		req.EmployeeID,
		req.Department,
		req.Designation,
		parseDatePtr(req.DOB),
		req.Sex,
		req.Address,
		req.EmployeeType,
		parseDatePtr(req.JoiningDate),
		req.ShiftTime,
		req.ProfileImage,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUserExists
		}
		return user.User{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return u, nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// parseDatePtr converts an optional YYYY-MM-DD string to a *time.Time for
// COALESCE updates; invalid input was already rejected by DTO validation.
func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &t
}
