package weekoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/weekoff"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/database"
	"github.com/tyro-hq/tyro-backend-go/internal/repository/postgresql"
)

type WeekOffServiceImpl struct {
	db *database.DB
	weekoff.WeekOffRepository
	announcement.AnnouncementRepository
	user.UserRepository
}

func NewWeekOffService(
	db *database.DB,
	weekOffRepo weekoff.WeekOffRepository,
	announcementRepo announcement.AnnouncementRepository,
	userRepo user.UserRepository,
) weekoff.WeekOffService {
	return &WeekOffServiceImpl{
		db:                     db,
		WeekOffRepository:      weekOffRepo,
		AnnouncementRepository: announcementRepo,
		UserRepository:         userRepo,
	}
}

func mapWeekOffToResponse(w weekoff.WeekOff) weekoff.WeekOffResponse {
	return weekoff.WeekOffResponse{
		ID:         w.ID,
		UserID:     w.UserID,
		DayOfWeek:  w.DayOfWeek,
		DayName:    weekoff.DayName(w.DayOfWeek),
		Type:       string(w.Type),
		CreatedAt:  w.CreatedAt.Format("2006-01-02 15:04:05"),
		UserName:   w.UserName,
		EmployeeID: w.UserEmployeeID,
	}
}

// Assign implements weekoff.WeekOffService.
func (s *WeekOffServiceImpl) Assign(ctx context.Context, req weekoff.AssignWeekOffRequest) (weekoff.WeekOffResponse, error) {
	if err := req.Validate(); err != nil {
		return weekoff.WeekOffResponse{}, err
	}

	assignee, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		// Unknown assignee surfaces as user.ErrUserNotFound.
		return weekoff.WeekOffResponse{}, err
	}

	existing, err := s.WeekOffRepository.GetByUserAndDay(ctx, req.UserID, req.DayOfWeek)
	if err != nil {
		return weekoff.WeekOffResponse{}, fmt.Errorf("failed to check existing week-off: %w", err)
	}
	if existing != nil {
		return weekoff.WeekOffResponse{}, &weekoff.AlreadyAssignedError{AssigneeName: assignee.Name}
	}

	var created weekoff.WeekOff
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.WeekOffRepository.Create(txCtx, weekoff.WeekOff{
			UserID:    req.UserID,
			DayOfWeek: req.DayOfWeek,
			Type:      weekoff.Type(req.Type),
		})
		if err != nil {
			// A racing duplicate assignment maps to AlreadyAssignedError in
			// the repository, without the assignee name.
			var dupErr *weekoff.AlreadyAssignedError
			if errors.As(err, &dupErr) {
				dupErr.AssigneeName = assignee.Name
			}
			return err
		}

		// The assignee learns about the schedule through exactly one
		// targeted announcement, written in the same transaction.
		_, err = s.AnnouncementRepository.Create(txCtx, announcement.Announcement{
			SenderID:    req.AdminID,
			RecipientID: &req.UserID,
			Target:      announcement.TargetIndividual,
			Title:       "Week-Off Assigned",
			Message: fmt.Sprintf("You have been assigned a %s week-off on every %s.",
				req.Type, weekoff.DayName(req.DayOfWeek)),
		})
		if err != nil {
			return fmt.Errorf("failed to create week-off announcement: %w", err)
		}

		return nil
	})
	if err != nil {
		return weekoff.WeekOffResponse{}, err
	}

	created.UserName = &assignee.Name
	created.UserEmployeeID = &assignee.EmployeeID

	return mapWeekOffToResponse(created), nil
}

// Remove implements weekoff.WeekOffService.
func (s *WeekOffServiceImpl) Remove(ctx context.Context, id string) error {
	return s.WeekOffRepository.Delete(ctx, id)
}

// List implements weekoff.WeekOffService.
func (s *WeekOffServiceImpl) List(ctx context.Context) ([]weekoff.WeekOffResponse, error) {
	offs, err := s.WeekOffRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list week-offs: %w", err)
	}

	responses := make([]weekoff.WeekOffResponse, 0, len(offs))
	for _, w := range offs {
		responses = append(responses, mapWeekOffToResponse(w))
	}
	return responses, nil
}
