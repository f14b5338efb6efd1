package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peopledesk/peopledesk-backend/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend/internal/handler/http/response"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token. Each accepted
// request also advances the session's idle clock; a token whose last request
// is older than the idle timeout is treated as signed out.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if jwtService.Touch(raw, time.Now()) {
				jwtService.RevokeToken(raw)
				response.HandleError(w, auth.ErrSessionIdle)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
