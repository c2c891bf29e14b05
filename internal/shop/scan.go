package shop

import (
	"context"
	"fmt"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

// collect membaca semua baris; hasil kosong tetap slice non-nil supaya JSON-nya [].
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// deleteByID: 0 row affected dianggap ErrNotFound.
func deleteByID(ctx context.Context, db postgres.DB, table, entity, id string) error {
	ct, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}

// Fragment json_build_object untuk relasi; NULL kalau baris relasi tidak ada.
const (
	userRefBrief = `CASE WHEN u.id IS NULL THEN NULL ELSE json_build_object('name', u.name, 'phone', u.phone) END`
	userRefFull  = `CASE WHEN u.id IS NULL THEN NULL ELSE json_build_object('name', u.name, 'phone', u.phone, 'address', u.address, 'image', u.image) END`
	userRefID    = `CASE WHEN u.id IS NULL THEN NULL ELSE json_build_object('id', u.id, 'name', u.name) END`

	productRefCart = `CASE WHEN p.id IS NULL THEN NULL ELSE json_build_object('name', p.name, 'price', p.price, 'image', p.image) END`
	productRefFull = `CASE WHEN p.id IS NULL THEN NULL ELSE json_build_object('id', p.id, 'name', p.name, 'price', p.price, 'image', p.image) END`
	productRefID   = `CASE WHEN p.id IS NULL THEN NULL ELSE json_build_object('id', p.id, 'name', p.name) END`

	pesananRef = `CASE WHEN ps.id IS NULL THEN NULL ELSE json_build_object('id', ps.id, 'status', ps.status, 'total_amount', ps.total_amount) END`
)
