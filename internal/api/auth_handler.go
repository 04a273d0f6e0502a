package api

import (
	"log/slog"
	"net/http"

	"github.com/osumare/task-api/internal/api/shared"
	"github.com/osumare/task-api/internal/platform/logger"
	"github.com/osumare/task-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
	}
}

// Login handles the POST /login endpoint. Any non-empty username is accepted.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidRequestFormat)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgUsernameRequired)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).
		Info("issued token", slog.String("username", req.Username))

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
