package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/templui/goalsetter/internal/apperr"
)

// Recover converts a panicking handler into a 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.ErrorContext(r.Context(), "handler panic", "panic", rec, "stack", string(debug.Stack()))
			WriteError(w, r, apperr.Internal(errors.New("internal server error")))
		}()

		next.ServeHTTP(w, r)
	})
}
