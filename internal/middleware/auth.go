package middleware

import (
	"net/http"
	"strings"

	"github.com/templui/goalsetter/internal/apperr"
	"github.com/templui/goalsetter/internal/ctxkeys"
)

// TokenVerifier resolves a bearer token to the id of the user it was issued
// for.
type TokenVerifier interface {
	VerifyJWT(token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token and puts the
// token's user id in the request context. The user record itself is not
// loaded here.
func RequireAuth(verifier TokenVerifier) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			token, ok := bearerToken(r)
			if !ok {
				return apperr.Unauthorized("Not authorized, no token")
			}

			userID, err := verifier.VerifyJWT(token)
			if err != nil {
				return apperr.Unauthorized("Not authorized")
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			return next(w, r.WithContext(ctx))
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
