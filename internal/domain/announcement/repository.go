package announcement

import (
	"context"
)

// AnnouncementRepository defines data access methods for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)

	// ListVisibleTo retrieves announcements targeting All or the given
	// user, newest first, capped at limit, with sender name joined.
	ListVisibleTo(ctx context.Context, userID string, limit int) ([]Announcement, error)

	// DeleteByUser removes announcements the user sent or received. Part
	// of the user-deletion cascade; must run inside the caller's
	// transaction.
	DeleteByUser(ctx context.Context, userID string) error
}
