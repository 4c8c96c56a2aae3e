package weekoff

import (
	"context"
)

// WeekOffService defines week-off assignment logic.
type WeekOffService interface {
	// Assign creates an assignment and posts exactly one announcement to
	// the assignee, atomically.
	Assign(ctx context.Context, req AssignWeekOffRequest) (WeekOffResponse, error)

	// Remove deletes an assignment by id.
	Remove(ctx context.Context, id string) error

	// List returns every assignment with assignee identity.
	List(ctx context.Context) ([]WeekOffResponse, error)
}
