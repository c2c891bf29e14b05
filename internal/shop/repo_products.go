package shop

import (
	"context"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type ProductRepo struct{ DB postgres.DB }

const productCols = `id, name, description, price, stock, image, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProductRepo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productCols+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProduct)
}

func (r *ProductRepo) Get(ctx context.Context, id string) (Product, error) {
	p, err := scanProduct(r.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id))
	if err != nil {
		return Product{}, notFound(err, "product", id)
	}
	return p, nil
}

func (r *ProductRepo) Create(ctx context.Context, in ProductInput) (Product, error) {
	now := time.Now().UTC()
	return scanProduct(r.DB.QueryRow(ctx, `
		INSERT INTO products (name, description, price, stock, image, created_at, updated_at)
		VALUES ($1, $2, COALESCE($3::bigint, 0), COALESCE($4::bigint, 0), $5, $6, $6)
		RETURNING `+productCols,
		in.Name, in.Description, in.Price, in.Stock, in.Image, now))
}

// Update hanya mengganti kolom yang dikirim (nil = pertahankan nilai lama).
func (r *ProductRepo) Update(ctx context.Context, id string, in ProductInput) (Product, error) {
	now := time.Now().UTC()
	p, err := scanProduct(r.DB.QueryRow(ctx, `
		UPDATE products SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			price       = COALESCE($4::bigint, price),
			stock       = COALESCE($5::bigint, stock),
			image       = COALESCE($6, image),
			updated_at  = $7
		WHERE id = $1
		RETURNING `+productCols,
		id, in.Name, in.Description, in.Price, in.Stock, in.Image, now))
	if err != nil {
		return Product{}, notFound(err, "product", id)
	}
	return p, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "products", "product", id)
}
