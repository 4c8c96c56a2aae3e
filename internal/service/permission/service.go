package permission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/permission"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

type PermissionServiceImpl struct {
	db *database.DB
	permission.PermissionRepository
	announcement.AnnouncementRepository
}

func NewPermissionService(
	db *database.DB,
	permissionRepo permission.PermissionRepository,
	announcementRepo announcement.AnnouncementRepository,
) permission.PermissionService {
	return &PermissionServiceImpl{
		db:                     db,
		PermissionRepository:   permissionRepo,
		AnnouncementRepository: announcementRepo,
	}
}

func mapPermissionToResponse(p permission.Permission) permission.PermissionResponse {
	return permission.PermissionResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Type:       string(p.Type),
		Reason:     p.Reason,
		FromDate:   p.FromDate.Format("2006-01-02"),
		ToDate:     p.ToDate.Format("2006-01-02"),
		Status:     string(p.Status),
		ApprovedBy: p.ApprovedBy,
		CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
		UserName:   p.UserName,
		EmployeeID: p.UserEmployeeID,
	}
}

func mapPermissionsToResponses(perms []permission.Permission) []permission.PermissionResponse {
	responses := make([]permission.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		responses = append(responses, mapPermissionToResponse(p))
	}
	return responses
}

// Create implements permission.PermissionService.
func (s *PermissionServiceImpl) Create(ctx context.Context, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	fromDate, _ := time.Parse("2006-01-02", req.FromDate)
	toDate, _ := time.Parse("2006-01-02", req.ToDate)

	created, err := s.PermissionRepository.Create(ctx, permission.Permission{
		UserID:   req.UserID,
		Type:     permission.Type(req.Type),
		Reason:   req.Reason,
		FromDate: fromDate,
		ToDate:   toDate,
		Status:   permission.StatusPending,
	})
	if err != nil {
		return permission.PermissionResponse{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return mapPermissionToResponse(created), nil
}

// Decide implements permission.PermissionService.
func (s *PermissionServiceImpl) Decide(ctx context.Context, req permission.DecidePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	status := permission.Status(req.Status)

	var decided permission.Permission
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		decided, err = s.PermissionRepository.Decide(txCtx, req.ID, status, req.AdminID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// No pending row matched: either the id is unknown or the
				// request was already decided. Look it up to tell them apart.
				if _, getErr := s.PermissionRepository.GetByID(txCtx, req.ID); getErr != nil {
					return getErr
				}
				return permission.ErrAlreadyDecided
			}
			return fmt.Errorf("failed to decide permission: %w", err)
		}

		// The applicant learns the outcome through exactly one targeted
		// announcement, written in the same transaction as the decision.
		_, err = s.AnnouncementRepository.Create(txCtx, announcement.Announcement{
			SenderID:    req.AdminID,
			RecipientID: &decided.UserID,
			Target:      announcement.TargetIndividual,
			Title:       fmt.Sprintf("Permission %s", status),
			Message: fmt.Sprintf("Your request for %s has been %s by the administration.",
				decided.Type, strings.ToLower(string(status))),
		})
		if err != nil {
			return fmt.Errorf("failed to create decision announcement: %w", err)
		}

		return nil
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	return mapPermissionToResponse(decided), nil
}

// ListMine implements permission.PermissionService.
func (s *PermissionServiceImpl) ListMine(ctx context.Context, userID string) ([]permission.PermissionResponse, error) {
	perms, err := s.PermissionRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return mapPermissionsToResponses(perms), nil
}

// ListAll implements permission.PermissionService.
func (s *PermissionServiceImpl) ListAll(ctx context.Context) ([]permission.PermissionResponse, error) {
	perms, err := s.PermissionRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return mapPermissionsToResponses(perms), nil
}
