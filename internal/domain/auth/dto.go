package auth

import (
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
)

type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"`
	User      user.UserResponse `json:"user"`
}

type RegisterResponse struct {
	User user.UserResponse `json:"user"`
}
