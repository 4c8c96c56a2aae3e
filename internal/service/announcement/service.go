package announcement

import (
	"context"
	"errors"
	"fmt"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/announcement"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
)

// listLimit caps the visible-announcements feed.
const listLimit = 10

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	user.UserRepository
}

func NewAnnouncementService(
	announcementRepo announcement.AnnouncementRepository,
	userRepo user.UserRepository,
) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepo,
		UserRepository:         userRepo,
	}
}

func mapAnnouncementToResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:          a.ID,
		SenderID:    a.SenderID,
		RecipientID: a.RecipientID,
		Target:      string(a.Target),
		Title:       a.Title,
		Message:     a.Message,
		CreatedAt:   a.CreatedAt.Format("2006-01-02 15:04:05"),
		SenderName:  a.SenderName,
	}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	target := announcement.TargetAll
	if req.Target != "" {
		target = announcement.Target(req.Target)
	}

	title := req.Title
	if title == "" {
		title = "Notice"
	}

	var recipientID *string
	if target == announcement.TargetIndividual {
		id, err := s.resolveRecipient(ctx, req)
		if err != nil {
			return announcement.AnnouncementResponse{}, err
		}
		recipientID = &id
	}

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		SenderID:    req.SenderID,
		RecipientID: recipientID,
		Target:      target,
		Title:       title,
		Message:     req.Message,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return mapAnnouncementToResponse(created), nil
}

// resolveRecipient finds an individual recipient by id, falling back to
// email when no id is supplied.
func (s *AnnouncementServiceImpl) resolveRecipient(ctx context.Context, req announcement.CreateAnnouncementRequest) (string, error) {
	var (
		recipient user.User
		err       error
	)

	switch {
	case req.RecipientID != nil && *req.RecipientID != "":
		recipient, err = s.UserRepository.GetByID(ctx, *req.RecipientID)
	case req.RecipientEmail != nil && *req.RecipientEmail != "":
		recipient, err = s.UserRepository.GetByEmail(ctx, *req.RecipientEmail)
	default:
		return "", announcement.ErrRecipientNotFound
	}

	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", announcement.ErrRecipientNotFound
		}
		return "", fmt.Errorf("failed to resolve recipient: %w", err)
	}

	return recipient.ID, nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context, userID string) ([]announcement.AnnouncementResponse, error) {
	items, err := s.AnnouncementRepository.ListVisibleTo(ctx, userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		responses = append(responses, mapAnnouncementToResponse(a))
	}
	return responses, nil
}
