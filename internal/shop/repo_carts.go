package shop

import (
	"context"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type CartRepo struct{ DB postgres.DB }

const cartCols = `id, quantity, user_id, product_id, created_at, updated_at`

// cartJoined: baris carts (alias c) + users(name, phone) + products(name, price, image).
const cartJoined = `
	SELECT c.id, c.quantity, c.user_id, c.product_id, c.created_at, c.updated_at,
	       ` + userRefBrief + `,
	       ` + productRefCart + `
	FROM c
	LEFT JOIN users u ON u.id = c.user_id
	LEFT JOIN products p ON p.id = c.product_id`

func scanCart(row pgx.Row) (Cart, error) {
	var c Cart
	err := row.Scan(&c.ID, &c.Quantity, &c.UserID, &c.ProductID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanCartJoined(row pgx.Row) (Cart, error) {
	var c Cart
	err := row.Scan(&c.ID, &c.Quantity, &c.UserID, &c.ProductID, &c.CreatedAt, &c.UpdatedAt, &c.User, &c.Product)
	return c, err
}

func (r *CartRepo) List(ctx context.Context) ([]Cart, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+cartCols+` FROM carts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCart)
}

func (r *CartRepo) Get(ctx context.Context, id string) (Cart, error) {
	c, err := scanCart(r.DB.QueryRow(ctx, `SELECT `+cartCols+` FROM carts WHERE id = $1`, id))
	if err != nil {
		return Cart{}, notFound(err, "cart", id)
	}
	return c, nil
}

func (r *CartRepo) Create(ctx context.Context, in CartInput) (Cart, error) {
	now := time.Now().UTC()
	return scanCartJoined(r.DB.QueryRow(ctx, `
		WITH c AS (
			INSERT INTO carts (quantity, user_id, product_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING `+cartCols+`
		)`+cartJoined,
		in.Quantity, in.UserID, in.ProductID, now))
}

// Update hanya quantity yang boleh diganti.
func (r *CartRepo) Update(ctx context.Context, id string, in CartInput) (Cart, error) {
	now := time.Now().UTC()
	c, err := scanCartJoined(r.DB.QueryRow(ctx, `
		WITH c AS (
			UPDATE carts SET quantity = COALESCE($2::int, quantity), updated_at = $3
			WHERE id = $1
			RETURNING `+cartCols+`
		)`+cartJoined,
		id, in.Quantity, now))
	if err != nil {
		return Cart{}, notFound(err, "cart", id)
	}
	return c, nil
}

func (r *CartRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "carts", "cart", id)
}
