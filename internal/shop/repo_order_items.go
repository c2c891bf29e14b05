package shop

import (
	"context"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type OrderItemRepo struct{ DB postgres.DB }

const orderItemCols = `id, quantity, pesanan_id, product_id, created_at, updated_at`

func scanOrderItem(row pgx.Row) (OrderItem, error) {
	var o OrderItem
	err := row.Scan(&o.ID, &o.Quantity, &o.PesananID, &o.ProductID, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

// List ikut membawa pesanan(id, status, total_amount) dan products(id, name, price, image).
func (r *OrderItemRepo) List(ctx context.Context) ([]OrderItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT oi.id, oi.quantity, oi.pesanan_id, oi.product_id, oi.created_at, oi.updated_at,
		       `+pesananRef+`,
		       `+productRefFull+`
		FROM order_items oi
		LEFT JOIN pesanan ps ON ps.id = oi.pesanan_id
		LEFT JOIN products p ON p.id = oi.product_id
		ORDER BY oi.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (OrderItem, error) {
		var o OrderItem
		err := row.Scan(&o.ID, &o.Quantity, &o.PesananID, &o.ProductID, &o.CreatedAt, &o.UpdatedAt, &o.Pesanan, &o.Product)
		return o, err
	})
}

func (r *OrderItemRepo) Get(ctx context.Context, id string) (OrderItem, error) {
	o, err := scanOrderItem(r.DB.QueryRow(ctx, `SELECT `+orderItemCols+` FROM order_items WHERE id = $1`, id))
	if err != nil {
		return OrderItem{}, notFound(err, "order item", id)
	}
	return o, nil
}

func (r *OrderItemRepo) Create(ctx context.Context, in OrderItemInput) (OrderItem, error) {
	now := time.Now().UTC()
	return scanOrderItem(r.DB.QueryRow(ctx, `
		INSERT INTO order_items (quantity, pesanan_id, product_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+orderItemCols,
		in.Quantity, in.PesananID, in.ProductID, now))
}

func (r *OrderItemRepo) Update(ctx context.Context, id string, in OrderItemInput) (OrderItem, error) {
	now := time.Now().UTC()
	o, err := scanOrderItem(r.DB.QueryRow(ctx, `
		UPDATE order_items SET quantity = COALESCE($2::int, quantity), updated_at = $3
		WHERE id = $1
		RETURNING `+orderItemCols,
		id, in.Quantity, now))
	if err != nil {
		return OrderItem{}, notFound(err, "order item", id)
	}
	return o, nil
}

func (r *OrderItemRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "order_items", "order item", id)
}
