package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/templui/goalsetter/internal/apperr"
	"github.com/templui/goalsetter/internal/ctxkeys"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing a response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HandleErrors adapts h to http.HandlerFunc. It is the only place failures
// are turned into responses: the status comes from the error's apperr kind
// (500 when unclassified) and the body is {"message": err.Error()}.
func HandleErrors(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError reports err to the client and logs it.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.KindOf(err).Status()

	attrs := []any{
		"error", err,
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", ctxkeys.RequestID(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		slog.DebugContext(r.Context(), "request rejected", attrs...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encErr := json.NewEncoder(w).Encode(ErrorResponse{Message: err.Error()})
	if encErr != nil {
		slog.Error("failed to encode error response", "error", encErr)
	}
}

// NotFound answers requests that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) error {
	return apperr.NotFound("Not found - " + r.URL.Path)
}
