package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/osumare/task-api/internal/api/shared"
)

// Recoverer converts a panic in a downstream handler into a 500 JSON response.
// The panic value and stack are logged (redacted) and never sent to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err := fmt.Errorf("panic: %v\n%s", rvr, debug.Stack())
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MsgInternalError, err)
		}()

		next.ServeHTTP(w, r)
	})
}
