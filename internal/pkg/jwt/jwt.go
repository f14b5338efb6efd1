package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/peopledesk/peopledesk-backend/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool

	// Touch records activity for a token and reports whether the session
	// has gone idle past the configured timeout. The first touch of a token
	// starts its idle clock.
	Touch(token string, now time.Time) (idle bool)
	PurgeStale(now time.Time)
}

type JWTService struct {
	accessExpiration  time.Duration
	refreshExpiration time.Duration
	idleTimeout       time.Duration
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]time.Time
	lastSeen          map[string]time.Time
	mu                sync.Mutex
}

func NewJWTService(secretKey string, accessExpiration, refreshExpiration, idleTimeout time.Duration) *JWTService {
	return &JWTService{
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
		idleTimeout:       idleTimeout,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:     make(map[string]time.Time),
		lastSeen:          make(map[string]time.Time),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role) (string, int64, error) {
	expiresAt := time.Now().Add(j.accessExpiration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (string, int64, error) {
	expiresAt := time.Now().Add(j.refreshExpiration).Unix()
	// The jti keeps tokens issued within the same second distinct, so
	// revoking one on rotation cannot revoke its replacement.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "refresh",
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// ParseRefreshToken validates a refresh token and returns its subject.
func (j *JWTService) ParseRefreshToken(tokenString string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now()
	delete(j.lastSeen, token)
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) Touch(token string, now time.Time) bool {
	if j.idleTimeout <= 0 {
		return false
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	last, seen := j.lastSeen[token]
	if seen && now.Sub(last) > j.idleTimeout {
		return true
	}
	j.lastSeen[token] = now
	return false
}

// PurgeStale drops revocation and activity entries that outlived the refresh
// expiration and can no longer matter.
func (j *JWTService) PurgeStale(now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := now.Add(-j.refreshExpiration)
	for token, at := range j.revokedTokens {
		if at.Before(cutoff) {
			delete(j.revokedTokens, token)
		}
	}
	for token, at := range j.lastSeen {
		if at.Before(cutoff) {
			delete(j.lastSeen, token)
		}
	}
}
