package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/redisx"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("session not found or expired")
)

// Users adalah sisi database yang dibutuhkan auth.
type Users interface {
	Create(ctx context.Context, in shop.UserInput) (shop.User, error)
	ByEmail(ctx context.Context, email string) (shop.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Address  *string
}

type Session struct {
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      shop.User `json:"user"`
}

// Service: register/login/logout dan resolve token. Session disimpan di Redis.
type Service struct {
	Users Users
	Redis *redis.Client
	TTL   time.Duration
	Log   logrus.FieldLogger
}

func (s *Service) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return redisx.TTLSession
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (shop.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return shop.User{}, fmt.Errorf("hash password: %w", err)
	}
	h := string(hash)
	role := shop.RoleCustomer
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := s.Users.Create(ctx, shop.UserInput{
		Name:         &in.Name,
		Email:        &email,
		PasswordHash: &h,
		Role:         &role,
		Phone:        in.Phone,
		Address:      in.Address,
	})
	if err != nil {
		return shop.User{}, err
	}
	s.Log.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shop.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if u.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	id := Identity{UserID: u.ID}
	if u.Email != nil {
		id.Email = *u.Email
	}
	b, err := json.Marshal(id)
	if err != nil {
		return Session{}, err
	}
	token := uuid.NewString()
	ttl := s.ttl()
	if err := s.Redis.Set(ctx, fmt.Sprintf(redisx.KeySession, token), b, ttl).Err(); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	s.Log.WithField("user_id", u.ID).Info("user logged in")
	return Session{Token: token, ExpiresAt: time.Now().Add(ttl).UTC(), User: u}, nil
}

// Logout idempotent: token yang sudah tidak ada tidak dianggap error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Redis.Del(ctx, fmt.Sprintf(redisx.KeySession, token)).Err()
}

func (s *Service) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoSession
	}
	raw, err := s.Redis.Get(ctx, fmt.Sprintf(redisx.KeySession, token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Identity{}, ErrNoSession
	}
	if err != nil {
		return Identity{}, fmt.Errorf("read session: %w", err)
	}
	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil || id.UserID == "" {
		return Identity{}, ErrNoSession
	}
	return id, nil
}
