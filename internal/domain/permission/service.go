package permission

import (
	"context"
)

// PermissionService defines the leave/exception request workflow.
type PermissionService interface {
	// Create files a new request; it always starts Pending.
	Create(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)

	// Decide approves or rejects a pending request and posts exactly one
	// announcement to the requester, atomically.
	Decide(ctx context.Context, req DecidePermissionRequest) (PermissionResponse, error)

	// ListMine returns the caller's own requests, newest first.
	ListMine(ctx context.Context, userID string) ([]PermissionResponse, error)

	// ListAll returns every request with requester identity (admin).
	ListAll(ctx context.Context) ([]PermissionResponse, error)
}
