package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/peopledesk/peopledesk-backend/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/jwt"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/oauth"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/validator"
	"github.com/peopledesk/peopledesk-backend/internal/repository/memory"
)

type stubGoogleService struct {
	token *oauth2.Token
	info  oauth.GoogleInformation
	err   error
}

func (s *stubGoogleService) GenerateState(userAgent string) string { return "state" }
func (s *stubGoogleService) RedirectURL(state string) string       { return "https://example.com" }

func (s *stubGoogleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.token, nil
}

func (s *stubGoogleService) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	if s.err != nil {
		return oauth.GoogleInformation{}, s.err
	}
	return s.info, nil
}

func newTestService(t *testing.T, google oauth.GoogleService) (auth.Service, *memory.UserRepository, jwt.Service) {
	t.Helper()

	repo := memory.NewUserRepository()
	jwtService := jwt.NewJWTService("test-secret", time.Hour, 7*24*time.Hour, 30*time.Minute)
	return NewAuthService(repo, jwtService, google), repo, jwtService
}

func seedUser(t *testing.T, repo *memory.UserRepository, password string) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := user.User{
		ID:           "user-1",
		Email:        "admin@corp.com",
		PasswordHash: string(hash),
		DisplayName:  "Admin",
		Role:         user.RoleAdmin,
	}
	repo.Seed(u)
	return u
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t, nil)
	seedUser(t, repo, "s3cret")

	resp, refreshToken, refreshExpiresAt, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "  Admin@Corp.com ",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Greater(t, refreshExpiresAt, time.Now().Unix())
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t, nil)
	seedUser(t, repo, "s3cret")

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@corp.com", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@corp.com", Password: "s3cret"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	_, _, _, err := svc.Login(ctx, auth.LoginRequest{Email: "not-an-email", Password: ""})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestRefreshIsSingleUse(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t, nil)
	seedUser(t, repo, "s3cret")

	_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@corp.com", Password: "s3cret"})
	require.NoError(t, err)

	resp, newRefreshToken, _, err := svc.Refresh(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, newRefreshToken)

	// The presented token was revoked on use.
	_, _, _, err = svc.Refresh(ctx, refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// The newly issued one still works.
	_, _, _, err = svc.Refresh(ctx, newRefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t, nil)
	seedUser(t, repo, "s3cret")

	resp, _, _, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@corp.com", Password: "s3cret"})
	require.NoError(t, err)

	_, _, _, err = svc.Refresh(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshGarbageToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, nil)

	_, _, _, err := svc.Refresh(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, repo, jwtService := newTestService(t, nil)
	seedUser(t, repo, "s3cret")

	_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@corp.com", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, refreshToken))
	assert.True(t, jwtService.IsTokenRevoked(refreshToken))

	// Logout is idempotent and tolerates a missing cookie.
	assert.NoError(t, svc.Logout(ctx, refreshToken))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()

	googleID := "google-123"
	stub := &stubGoogleService{
		token: &oauth2.Token{AccessToken: "ya29.token"},
		info: oauth.GoogleInformation{
			GoogleID:      googleID,
			Email:         "Admin@Corp.com",
			VerifiedEmail: true,
		},
	}
	svc, repo, _ := newTestService(t, stub)

	u := seedUser(t, repo, "s3cret")
	u.GoogleID = &googleID
	repo.Seed(u)

	resp, refreshToken, _, err := svc.LoginWithGoogle(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.NotEmpty(t, refreshToken)
}

func TestLoginWithGoogleFallsBackToEmail(t *testing.T) {
	ctx := context.Background()

	stub := &stubGoogleService{
		token: &oauth2.Token{AccessToken: "ya29.token"},
		info: oauth.GoogleInformation{
			GoogleID:      "google-456",
			Email:         "Admin@Corp.com",
			VerifiedEmail: true,
		},
	}
	svc, repo, _ := newTestService(t, stub)
	seedUser(t, repo, "s3cret")

	resp, _, _, err := svc.LoginWithGoogle(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLoginWithGoogleUnverifiedEmail(t *testing.T) {
	ctx := context.Background()

	stub := &stubGoogleService{
		token: &oauth2.Token{AccessToken: "ya29.token"},
		info: oauth.GoogleInformation{
			GoogleID:      "google-123",
			Email:         "admin@corp.com",
			VerifiedEmail: false,
		},
	}
	svc, repo, _ := newTestService(t, stub)
	seedUser(t, repo, "s3cret")

	_, _, _, err := svc.LoginWithGoogle(ctx, "auth-code")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWithGoogleExchangeFails(t *testing.T) {
	ctx := context.Background()

	stub := &stubGoogleService{err: errors.New("exchange failed")}
	svc, _, _ := newTestService(t, stub)

	_, _, _, err := svc.LoginWithGoogle(ctx, "bad-code")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
