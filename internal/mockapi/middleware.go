package mockapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/auth"
	"github.com/dmitrijs2005/newsdesk/internal/mockapi/users"
)

type ctxKey int

const claimsKey ctxKey = iota

func claimsFrom(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

func userID(ctx context.Context) int64 {
	if c, ok := claimsFrom(ctx); ok {
		return c.UserID
	}
	return 0
}

// authenticate attaches the bearer's claims when a valid token is sent.
// Missing, malformed or expired tokens leave the request anonymous;
// requireUser rejects it on the gated routes.
func authenticate(svc *users.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := svc.Authenticate(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := claimsFrom(r.Context()); !ok {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", r.Header.Get("X-Request-ID"),
				"duration", time.Since(start),
			)
		})
	}
}
