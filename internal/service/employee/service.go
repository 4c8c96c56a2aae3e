package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/attendance"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	attendance.AttendanceRepository
	permission.PermissionRepository
	weekoff.WeekOffRepository
	announcement.AnnouncementRepository
}

func NewEmployeeService(
	db *database.DB,
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	permissionRepo permission.PermissionRepository,
	weekOffRepo weekoff.WeekOffRepository,
	announcementRepo announcement.AnnouncementRepository,
) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:                     db,
		UserRepository:         userRepo,
		AttendanceRepository:   attendanceRepo,
		PermissionRepository:   permissionRepo,
		WeekOffRepository:      weekOffRepo,
		AnnouncementRepository: announcementRepo,
	}
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.UpdateEmployee(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}

// Delete implements user.EmployeeService.
//
// Dependent rows go first inside one transaction, so a half-deleted user
// can never be observed.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, actorID string) error {
	if id == actorID {
		return user.ErrCannotDeleteSelf
	}

	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.AttendanceRepository.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		if err := s.PermissionRepository.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete permissions: %w", err)
		}
		if err := s.WeekOffRepository.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete week-offs: %w", err)
		}
		if err := s.AnnouncementRepository.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete announcements: %w", err)
		}
		return s.UserRepository.Delete(txCtx, id)
	})
}
