package user

import (
	"context"
)

// EmployeeService defines admin-side employee management.
type EmployeeService interface {
	// List returns every user in sanitized form.
	List(ctx context.Context) ([]UserResponse, error)

	// Update edits any employee field an admin may change.
	Update(ctx context.Context, req UpdateEmployeeRequest) (UserResponse, error)

	// Delete removes a user and every row they own in one transaction.
	// Admins cannot delete their own account.
	Delete(ctx context.Context, id string, actorID string) error
}
