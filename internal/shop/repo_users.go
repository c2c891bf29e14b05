package shop

import (
	"context"
	"strings"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type UserRepo struct{ DB postgres.DB }

const userCols = `id, name, email, role, phone, address, image, remember_token, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Phone, &u.Address, &u.Image, &u.RememberToken, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

func (r *UserRepo) Get(ctx context.Context, id string) (User, error) {
	u, err := scanUser(r.DB.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
	if err != nil {
		return User{}, notFound(err, "user", id)
	}
	return u, nil
}

// ByEmail ikut membaca password_hash; hanya untuk login.
func (r *UserRepo) ByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.DB.QueryRow(ctx, `SELECT `+userCols+`, password_hash FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Phone, &u.Address, &u.Image, &u.RememberToken, &u.CreatedAt, &u.UpdatedAt, &u.PasswordHash)
	if err != nil {
		return User{}, notFound(err, "user", email)
	}
	return u, nil
}

// Role dibaca ulang tiap request admin; tidak di-cache.
func (r *UserRepo) Role(ctx context.Context, id string) (string, error) {
	var role string
	if err := r.DB.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role); err != nil {
		return "", notFound(err, "user", id)
	}
	return role, nil
}

func normalizeEmail(in *UserInput) {
	if in.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &e
	}
}

func (r *UserRepo) Create(ctx context.Context, in UserInput) (User, error) {
	normalizeEmail(&in)
	now := time.Now().UTC()
	return scanUser(r.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, phone, address, image, remember_token, created_at, updated_at)
		VALUES ($1, $2, $3, COALESCE($4, 'customer'), $5, $6, $7, $8, $9, $9)
		RETURNING `+userCols,
		in.Name, in.Email, in.PasswordHash, in.Role, in.Phone, in.Address, in.Image, in.RememberToken, now))
}

func (r *UserRepo) Update(ctx context.Context, id string, in UserInput) (User, error) {
	normalizeEmail(&in)
	now := time.Now().UTC()
	u, err := scanUser(r.DB.QueryRow(ctx, `
		UPDATE users SET
			name           = COALESCE($2, name),
			email          = COALESCE($3, email),
			role           = COALESCE($4, role),
			phone          = COALESCE($5, phone),
			address        = COALESCE($6, address),
			image          = COALESCE($7, image),
			remember_token = COALESCE($8, remember_token),
			updated_at     = $9
		WHERE id = $1
		RETURNING `+userCols,
		id, in.Name, in.Email, in.Role, in.Phone, in.Address, in.Image, in.RememberToken, now))
	if err != nil {
		return User{}, notFound(err, "user", id)
	}
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "users", "user", id)
}
