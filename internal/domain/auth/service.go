package auth

import (
	"context"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
)

// AuthService defines registration, login and self-service profile logic.
type AuthService interface {
	Register(ctx context.Context, req user.RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req user.LoginRequest) (LoginResponse, error)
	UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error)
}
