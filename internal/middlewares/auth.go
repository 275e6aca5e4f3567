package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ssemenov2018/task-manager-api/internal/jwt"
	"github.com/ssemenov2018/task-manager-api/internal/logger"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ActiveUserChecker reports whether a user id resolves to an existing,
// active account.
type ActiveUserChecker interface {
	CheckActive(ctx context.Context, userID int64) (bool, error)
}

// AuthMiddleware resolves the Authorization header to an active user id
// and stores it in the request context. Every failure mode yields 401;
// no authorization beyond "this is a live account" happens here.
func AuthMiddleware(tokener Tokener, users ActiveUserChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w, err.Error())
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			if claims.UserID <= 0 {
				logger.Log.Errorw("authorization failed: missing user_id claim")
				unauthorized(w, "Invalid token payload")
				return
			}

			active, err := users.CheckActive(ctx, claims.UserID)
			if err != nil || !active {
				logger.Log.Errorw("authorization failed", "user_id", claims.UserID, "err", err)
				unauthorized(w, "User not found or inactive")
				return
			}

			ctx = SetUserIDToContext(ctx, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// userIDKey is an unexported type for the user id context key.
type userIDKey struct{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the
// context. The second return is false when no id was stored.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
