package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/peopledesk/peopledesk-backend/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/jwt"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepo      user.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.Repository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.Service {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh implements auth.Service. The presented token is revoked so each
// refresh token is single-use.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, string, int64, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("refresh: %w", err)
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// LoginWithGoogle implements auth.Service. Only accounts already linked to a
// Google identity can sign in this way; there is no self-service signup.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, string, int64, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByGoogleID(ctx, info.GoogleID)
	if errors.Is(err, user.ErrUserNotFound) {
		// Fall back to the email so accounts created before linking work.
		u, err = s.userRepo.GetByEmail(ctx, strings.ToLower(info.Email))
	}
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("google login: %w", err)
	}

	slog.Info("Google sign-in", "user_id", u.ID)

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.LoginResponse, string, int64, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("generate refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		User: auth.UserInfo{
			ID:           u.ID,
			Email:        u.Email,
			DisplayName:  u.DisplayName,
			Role:         string(u.Role),
			ProfilePhoto: u.ProfilePhoto,
		},
	}

	return resp, refreshToken, refreshExpiresAt, nil
}
