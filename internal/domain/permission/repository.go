package permission

import (
	"context"
	"time"
)

// PermissionRepository defines data access methods for permission requests.
type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)

	GetByID(ctx context.Context, id string) (Permission, error)

	// ListByUser retrieves the requester's own permissions, newest first.
	ListByUser(ctx context.Context, userID string) ([]Permission, error)

	// ListAll retrieves every permission joined with requester identity,
	// newest first. Admin view.
	ListAll(ctx context.Context) ([]Permission, error)

	// ListApprovedInRange retrieves approved permissions whose date range
	// overlaps [start, end]. Feeds the attendance report.
	ListApprovedInRange(ctx context.Context, start, end time.Time) ([]Permission, error)

	// Decide sets status and approver on a still-pending request and
	// reports whether a row was actually updated. A decided request is
	// never re-decided.
	Decide(ctx context.Context, id string, status Status, adminID string) (Permission, error)

	// DeleteByUser removes all permission rows for a user. Part of the
	// user-deletion cascade; must run inside the caller's transaction.
	DeleteByUser(ctx context.Context, userID string) error
}
