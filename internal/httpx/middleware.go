package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "access_token"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (auth.Identity, error)
}

type RoleLookup interface {
	Role(ctx context.Context, userID string) (string, error)
}

// Guard berisi auth gate dan role gate.
type Guard struct {
	Sessions SessionResolver
	Roles    RoleLookup
	Log      logrus.FieldLogger
}

// requestToken: cookie access_token dulu, lalu Authorization: Bearer.
func requestToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Auth menolak request tanpa session valid (401) sebelum handler menyentuh database.
func (g *Guard) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := requestToken(r)
		if token == "" {
			fail(w, http.StatusUnauthorized, "Token tidak ditemukan, silakan login", nil)
			return
		}
		id, err := g.Sessions.Resolve(r.Context(), token)
		if errors.Is(err, auth.ErrNoSession) {
			fail(w, http.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa", err)
			return
		}
		if err != nil {
			g.Log.WithError(err).Error("resolve session")
			fail(w, http.StatusInternalServerError, "Terjadi kesalahan pada verifikasi token", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

// Admin harus dipasang setelah Auth; role selalu dibaca ulang dari database.
func (g *Guard) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.FromContext(r.Context())
		if !ok {
			fail(w, http.StatusUnauthorized, "User tidak ditemukan dalam request", nil)
			return
		}
		ctx, cancel := dbCtx(r)
		defer cancel()
		role, err := g.Roles.Role(ctx, id.UserID)
		if err != nil {
			g.Log.WithError(err).WithField("user_id", id.UserID).Warn("admin check: user lookup failed")
			fail(w, http.StatusNotFound, "Data user tidak ditemukan di database", err)
			return
		}
		if role != shop.RoleAdmin {
			fail(w, http.StatusForbidden, "Akses ditolak - Anda bukan admin", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			entry := logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"remote_ip":  r.RemoteAddr,
				"latency_ms": time.Since(start).Milliseconds(),
			})
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				entry = entry.WithField("request_id", reqID)
			}
			switch {
			case ww.Status() >= 500:
				entry.Error("request completed with server error")
			case ww.Status() >= 400:
				entry.Warn("request completed with client error")
			default:
				entry.Info("request completed")
			}
		})
	}
}
