package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hexahash/attendance-portal-go/internal/domain/auth"
	"github.com/hexahash/attendance-portal-go/internal/domain/user"
	"github.com/hexahash/attendance-portal-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	_ = s.userRepo.LogActivity(ctx, user.ActivityLog{UserID: u.ID, Action: "login", IPAddress: req.IPAddress})

	return &auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		User:                  toUserResponse(u),
	}, nil
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, user.ErrUsernameExists
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
		Mobile:       req.Mobile,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	_ = s.userRepo.LogActivity(ctx, user.ActivityLog{UserID: created.ID, Action: "register"})

	resp := toUserResponse(created)
	return &resp, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	// Rotate: the used refresh token dies with the exchange.
	s.jwtService.RevokeToken(refreshToken)

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	newRefresh, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return &auth.RefreshResponse{
		AccessToken:           accessToken,
		RefreshToken:          newRefresh,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		if t, err := s.jwtService.JWTAuth().Decode(accessToken); err == nil {
			if uid, ok := t.Get("user_id"); ok {
				if id, ok := uid.(string); ok {
					_ = s.userRepo.LogActivity(ctx, user.ActivityLog{UserID: id, Action: "logout"})
				}
			}
		}
		s.jwtService.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// ChangePassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req *auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, u); err != nil {
		return err
	}

	_ = s.userRepo.LogActivity(ctx, user.ActivityLog{UserID: u.ID, Action: "change_password"})

	return nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*auth.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(u)
	return &resp, nil
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		Mobile:     u.Mobile,
	}
}
