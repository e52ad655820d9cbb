package auth

import (
	"context"
	"net/http"
)

// TokenHeader carries the session token of authenticated requests.
const TokenHeader = "X-FITGENIUS-TOKEN"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves session tokens to user ids.
type Checker interface {
	UserID(ctx context.Context, token string) (string, error)
}

type userIDKey struct{}

func ContextWithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey{}, uid)
}

// UserIDFromContext returns the id of the logged in user, set by the auth middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey{}).(string)
	return uid, ok && uid != ""
}

// RequestUserID returns the user id of the request, or writes 401 and returns false.
func RequestUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no user session", http.StatusUnauthorized)
	}
	return uid, ok
}
