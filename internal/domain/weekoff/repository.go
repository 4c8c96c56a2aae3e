package weekoff

import (
	"context"
)

// WeekOffRepository defines data access methods for week-off assignments.
type WeekOffRepository interface {
	// Create inserts an assignment. The (user_id, day_of_week) unique
	// constraint backs the at-most-one invariant under concurrency.
	Create(ctx context.Context, w WeekOff) (WeekOff, error)

	// GetByUserAndDay retrieves the assignment for a (user, day), or nil.
	GetByUserAndDay(ctx context.Context, userID string, dayOfWeek int) (*WeekOff, error)

	// List retrieves all assignments joined with user identity.
	List(ctx context.Context) ([]WeekOff, error)

	// Delete removes an assignment by id; deleting a missing id reports
	// ErrWeekOffNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteByUser removes all assignments for a user. Part of the
	// user-deletion cascade; must run inside the caller's transaction.
	DeleteByUser(ctx context.Context, userID string) error
}
