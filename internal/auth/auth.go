package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userKey contextKey = "user"

// UnknownUser is stamped on records created without a valid identity.
const UnknownUser = "unknown"

// Middleware extracts the operator identity from a bearer token. Requests
// without a valid token are not rejected; downstream code sees "unknown".
type Middleware struct {
	secret []byte
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: []byte(secret)}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := m.userFromRequest(r); ok {
			r = r.WithContext(WithUser(r.Context(), user))
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) userFromRequest(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", false
	}

	return subject, true
}

// WithUser stores the operator identity on the context.
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// User returns the operator identity from the context, or "unknown".
func User(ctx context.Context) string {
	if user, ok := ctx.Value(userKey).(string); ok && user != "" {
		return user
	}

	return UnknownUser
}
