package shop

import (
	"context"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/postgres"
	"github.com/jackc/pgx/v5"
)

type ReviewRepo struct{ DB postgres.DB }

const reviewCols = `id, rating, review, product_id, user_id, created_at, updated_at`

func scanReview(row pgx.Row) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.Rating, &rv.Review, &rv.ProductID, &rv.UserID, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *ReviewRepo) List(ctx context.Context) ([]Review, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT rv.id, rv.rating, rv.review, rv.product_id, rv.user_id, rv.created_at, rv.updated_at,
		       `+productRefID+`,
		       `+userRefID+`
		FROM produk_reviews rv
		LEFT JOIN products p ON p.id = rv.product_id
		LEFT JOIN users u ON u.id = rv.user_id
		ORDER BY rv.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.Row) (Review, error) {
		var rv Review
		err := row.Scan(&rv.ID, &rv.Rating, &rv.Review, &rv.ProductID, &rv.UserID, &rv.CreatedAt, &rv.UpdatedAt, &rv.Product, &rv.User)
		return rv, err
	})
}

func (r *ReviewRepo) Get(ctx context.Context, id string) (Review, error) {
	rv, err := scanReview(r.DB.QueryRow(ctx, `SELECT `+reviewCols+` FROM produk_reviews WHERE id = $1`, id))
	if err != nil {
		return Review{}, notFound(err, "review", id)
	}
	return rv, nil
}

func (r *ReviewRepo) Create(ctx context.Context, in ReviewInput) (Review, error) {
	now := time.Now().UTC()
	return scanReview(r.DB.QueryRow(ctx, `
		INSERT INTO produk_reviews (rating, review, product_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+reviewCols,
		in.Rating, in.Review, in.ProductID, in.UserID, now))
}

func (r *ReviewRepo) Update(ctx context.Context, id string, in ReviewInput) (Review, error) {
	now := time.Now().UTC()
	rv, err := scanReview(r.DB.QueryRow(ctx, `
		UPDATE produk_reviews SET
			rating     = COALESCE($2::int, rating),
			review     = COALESCE($3, review),
			updated_at = $4
		WHERE id = $1
		RETURNING `+reviewCols,
		id, in.Rating, in.Review, now))
	if err != nil {
		return Review{}, notFound(err, "review", id)
	}
	return rv, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.DB, "produk_reviews", "review", id)
}
