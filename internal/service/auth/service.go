package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tyro-hq/tyro-backend-go/internal/domain/auth"
	"github.com/tyro-hq/tyro-backend-go/internal/domain/user"
	"github.com/tyro-hq/tyro-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	exists, err := a.UserRepository.ExistsByEmailOrEmployeeID(ctx, req.Email, req.EmployeeID)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != nil {
		role = user.Role(*req.Role)
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		EmployeeID:   req.EmployeeID,
		Role:         role,
		Department:   req.Department,
		Designation:  req.Designation,
		DOB:          parseDate(req.DOB),
		Sex:          req.Sex,
		Address:      req.Address,
		EmployeeType: req.EmployeeType,
		JoiningDate:  parseDate(req.JoiningDate),
		ShiftTime:    req.ShiftTime,
		ProfileImage: req.ProfileImage,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		// A racing registration with the same email maps to ErrUserExists
		// in the repository.
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{User: user.ToResponse(created)}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	found, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Unknown email and wrong password are indistinguishable to
			// the caller.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(found.ID, found.Email, found.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(found),
	}, nil
}

// UpdateProfile implements auth.AuthService.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := a.UserRepository.UpdateProfile(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}
