package auth

import "context"

type Service interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, string, int64, error)

	// Logout revokes the refresh token; it is idempotent.
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle resolves the OAuth2 callback code to a known user and
	// issues a token pair.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, string, int64, error)
}
