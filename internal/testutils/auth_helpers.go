package testutils

import (
	"context"
	"testing"

	"github.com/osumare/task-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// GenerateAuthHeader mints a token for username and returns it as a
// "Bearer <token>" header value.
func GenerateAuthHeader(t *testing.T, jwtService auth.JWTService, username string) string {
	t.Helper()

	token, err := jwtService.GenerateToken(context.Background(), username)
	require.NoError(t, err, "Failed to generate token")
	return "Bearer " + token
}
