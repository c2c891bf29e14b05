package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/logging"
	"github.com/stretchr/testify/assert"
)

type brokenSessions struct{}

func (brokenSessions) Resolve(context.Context, string) (auth.Identity, error) {
	return auth.Identity{}, errors.New("redis down")
}

func TestRequestToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, requestToken(req))

	req.Header.Set("Authorization", "bearer abc ")
	assert.Equal(t, "abc", requestToken(req))

	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "from-cookie"})
	assert.Equal(t, "from-cookie", requestToken(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	assert.Empty(t, requestToken(req))
}

func TestGuard_AuthAttachesIdentity(t *testing.T) {
	g := &Guard{Sessions: fakeSessions{"tok": {UserID: "u-1", Email: "a@b.com"}}, Log: logging.Discard()}

	var got auth.Identity
	h := g.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u-1", got.UserID)
}

func TestGuard_AuthStoreFailureIs500(t *testing.T) {
	g := &Guard{Sessions: brokenSessions{}, Log: logging.Discard()}
	h := g.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGuard_Admin(t *testing.T) {
	g := &Guard{Roles: fakeRoles{"admin-1": "admin", "cust-1": "customer"}, Log: logging.Discard()}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	cases := []struct {
		name string
		ctx  context.Context
		want int
	}{
		{"no identity", context.Background(), http.StatusUnauthorized},
		{"unknown user", auth.WithIdentity(context.Background(), auth.Identity{UserID: "ghost"}), http.StatusNotFound},
		{"customer", auth.WithIdentity(context.Background(), auth.Identity{UserID: "cust-1"}), http.StatusForbidden},
		{"admin", auth.WithIdentity(context.Background(), auth.Identity{UserID: "admin-1"}), http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(c.ctx)
			rec := httptest.NewRecorder()
			g.Admin(ok).ServeHTTP(rec, req)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
