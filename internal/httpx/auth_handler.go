package httpx

import (
	"errors"
	"net/http"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type registerReq struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type loginReq struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type AuthHandler struct {
	Accounts     Accounts
	Users        UserStore
	CookieSecure bool
	Log          logrus.FieldLogger
}

func (h *AuthHandler) Register(r chi.Router, g *Guard) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)
	r.With(g.Auth).Get("/user", h.user)
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Registrasi gagal", err)
		return
	}
	req := registerReq{Name: value(f.str("name")), Email: value(f.str("email")), Password: value(f.str("password"))}
	if err := validate.Struct(req); err != nil {
		fail(w, http.StatusBadRequest, "Registrasi gagal", err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	u, err := h.Accounts.Register(ctx, auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    f.str("phone"),
		Address:  f.str("address"),
	})
	if err != nil {
		fail(w, http.StatusBadRequest, "Registrasi gagal", err)
		return
	}
	respond(w, http.StatusCreated, "Registrasi berhasil", u)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Login gagal", err)
		return
	}
	req := loginReq{Email: value(f.str("email")), Password: value(f.str("password"))}
	if err := validate.Struct(req); err != nil {
		fail(w, http.StatusBadRequest, "Login gagal", err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	s, err := h.Accounts.Login(ctx, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		fail(w, http.StatusUnauthorized, "Email atau password salah", err)
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("login")
		fail(w, http.StatusInternalServerError, "Login gagal", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	respond(w, http.StatusOK, "Login berhasil", s)
}

// logout idempotent: tanpa token pun tetap 200 dan cookie dibersihkan.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbCtx(r)
	defer cancel()

	if err := h.Accounts.Logout(ctx, requestToken(r)); err != nil {
		h.Log.WithError(err).Error("logout")
		fail(w, http.StatusInternalServerError, "Logout gagal", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	respond(w, http.StatusOK, "Logout berhasil", nil)
}

func (h *AuthHandler) user(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	ctx, cancel := dbCtx(r)
	defer cancel()

	u, err := h.Users.Get(ctx, id.UserID)
	if err != nil {
		fail(w, missingOr(err, http.StatusInternalServerError), "Data user tidak ditemukan", err)
		return
	}
	respond(w, http.StatusOK, "Berhasil mengambil data user", u)
}
