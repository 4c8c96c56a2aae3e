package announcement

import (
	"context"
)

// AnnouncementService defines announcement broadcast logic.
type AnnouncementService interface {
	// Create posts a broadcast to everyone or one recipient, resolving an
	// individual recipient by id or email.
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)

	// List returns the announcements visible to the caller, newest first.
	List(ctx context.Context, userID string) ([]AnnouncementResponse, error)
}
