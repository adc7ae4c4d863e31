package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repository"
	"blogapp/internal/service"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	userKey   contextKey = "user"
)

type Middleware func(http.Handler) http.Handler

// AuthGuard resolves bearer tokens into identities before mutating handlers
// run.
type AuthGuard struct {
	auth  service.AuthService
	users repository.UserRepository
}

func NewAuthGuard(auth service.AuthService, users repository.UserRepository) *AuthGuard {
	return &AuthGuard{auth: auth, users: users}
}

// RequireAuth rejects requests without a valid bearer token. On success the
// claim's user id and the resolved user are attached to the request context.
// If the identity row has vanished since issuance the request still proceeds,
// with only the id attached.
func (g *AuthGuard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			writeError(w, "Not authorized, no token", http.StatusUnauthorized)
			return
		}

		userID, err := g.auth.VerifyToken(tokenString)
		if err != nil {
			writeError(w, "Not authorized, token failed", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)

		if user, err := g.users.GetUserByID(ctx, userID); err == nil {
			ctx = context.WithValue(ctx, userKey, user)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the identity when a valid bearer token is present and
// lets the request through either way. Used where anonymous access is allowed
// but the viewer should be attributed.
func (g *AuthGuard) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := g.auth.VerifyToken(tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

// UserIDFromContext returns the requester's id set by the guard.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// UserFromContext returns the resolved user set by the guard; ok is false
// when the identity could not be resolved.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// WithIdentity attaches an identity the way the guard does. Intended for
// tests.
func WithIdentity(ctx context.Context, userID string, user *models.User) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	if user != nil {
		ctx = context.WithValue(ctx, userKey, user)
	}
	return ctx
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
