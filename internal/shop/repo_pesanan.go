package shop

import (
	"context"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type PesananRepo struct{ DB postgres.DB }

const pesananCols = `id, user_id, status, total_amount, created_at, updated_at`

// pesanan (alias ps) + users(name, phone, address, image)
const pesananJoined = `
	SELECT ps.id, ps.user_id, ps.status, ps.total_amount, ps.created_at, ps.updated_at,
	       ` + userRefFull + `
	FROM pesanan ps
	LEFT JOIN users u ON u.id = ps.user_id`

func scanPesanan(row pgx.Row) (Pesanan, error) {
	var p Pesanan
	err := row.Scan(&p.ID, &p.UserID, &p.Status, &p.TotalAmount, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanPesananJoined(row pgx.Row) (Pesanan, error) {
	var p Pesanan
	err := row.Scan(&p.ID, &p.UserID, &p.Status, &p.TotalAmount, &p.CreatedAt, &p.UpdatedAt, &p.User)
	return p, err
}

func (r *PesananRepo) List(ctx context.Context) ([]Pesanan, error) {
	rows, err := r.DB.Query(ctx, pesananJoined+` ORDER BY ps.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPesananJoined)
}

// ListByUser: "pesanan saya", di-scope ke user_id pemanggil.
func (r *PesananRepo) ListByUser(ctx context.Context, userID string) ([]Pesanan, error) {
	rows, err := r.DB.Query(ctx, pesananJoined+` WHERE ps.user_id = $1 ORDER BY ps.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPesananJoined)
}

func (r *PesananRepo) Get(ctx context.Context, id string) (Pesanan, error) {
	p, err := scanPesananJoined(r.DB.QueryRow(ctx, pesananJoined+` WHERE ps.id = $1`, id))
	if err != nil {
		return Pesanan{}, notFound(err, "pesanan", id)
	}
	return p, nil
}

func (r *PesananRepo) Create(ctx context.Context, in PesananInput) (Pesanan, error) {
	now := time.Now().UTC()
	return scanPesanan(r.DB.QueryRow(ctx, `
		INSERT INTO pesanan (user_id, status, total_amount, created_at, updated_at)
		VALUES ($1, COALESCE($2, 'pending'), COALESCE($3::bigint, 0), $4, $4)
		RETURNING `+pesananCols,
		in.UserID, in.Status, in.TotalAmount, now))
}

func (r *PesananRepo) Update(ctx context.Context, id string, in PesananInput) (Pesanan, error) {
	now := time.Now().UTC()
	p, err := scanPesanan(r.DB.QueryRow(ctx, `
		UPDATE pesanan SET
			status       = COALESCE($2, status),
			total_amount = COALESCE($3::bigint, total_amount),
			updated_at   = $4
		WHERE id = $1
		RETURNING `+pesananCols,
		id, in.Status, in.TotalAmount, now))
	if err != nil {
		return Pesanan{}, notFound(err, "pesanan", id)
	}
	return p, nil
}

func (r *PesananRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "pesanan", "pesanan", id)
}
