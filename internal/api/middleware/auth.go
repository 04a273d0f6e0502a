package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/osumare/task-api/internal/api/shared"
	"github.com/osumare/task-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the username to the request context for authorized requests.
//
// A missing header, a non-Bearer scheme or an empty token yields 401; a token
// that fails verification yields 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MsgTokenMissing)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MsgTokenMissing)
			case errors.Is(err, auth.ErrExpiredToken), errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithErrorAndLog(
					w, r, http.StatusForbidden, shared.MsgInvalidToken, err,
					shared.WithElevatedLogLevel(),
				)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MsgInternalError, err)
			}
			return
		}

		ctx := shared.WithUsername(r.Context(), claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername extracts the authenticated username from the request context.
// Returns the username and a boolean indicating if it was found.
func GetUsername(r *http.Request) (string, bool) {
	return shared.GetUsername(r.Context())
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
