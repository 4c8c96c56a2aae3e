package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ExistsByEmailOrEmployeeID backs the duplicate check at registration.
	ExistsByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (bool, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (User, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (User, error)
	// Delete removes only the user row; cascading of owned rows is handled
	// by the employee service inside one transaction.
	Delete(ctx context.Context, id string) error
}
