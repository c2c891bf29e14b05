package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var productColumns = []string{"id", "name", "description", "price", "stock", "image", "created_at", "updated_at"}

func TestProductRepo_CreateWithoutImage(t *testing.T) {
	mock := newMock(t)
	repo := &ProductRepo{DB: mock}
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs(ptr("Burger"), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow("p1", "Burger", (*string)(nil), int64(25000), int64(0), (*string)(nil), now, now))

	p, err := repo.Create(context.Background(), ProductInput{Name: ptr("Burger"), Price: ptr(int64(25000))})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, int64(25000), p.Price)
	assert.Nil(t, p.Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetNotFound(t *testing.T) {
	mock := newMock(t)
	repo := &ProductRepo{DB: mock}

	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_UpdateKeepsOmittedFields(t *testing.T) {
	mock := newMock(t)
	repo := &ProductRepo{DB: mock}
	created := time.Now().UTC().Add(-time.Hour)
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE products SET`).
		WithArgs("p1", (*string)(nil), (*string)(nil), ptr(int64(30000)), (*int64)(nil), (*string)(nil), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(productColumns).
			AddRow("p1", "Burger", ptr("enak"), int64(30000), int64(5), ptr("http://cdn/x.png"), created, now))

	p, err := repo.Update(context.Background(), "p1", ProductInput{Price: ptr(int64(30000))})
	require.NoError(t, err)
	assert.Equal(t, "Burger", p.Name)
	assert.Equal(t, int64(30000), p.Price)
	assert.Equal(t, "http://cdn/x.png", *p.Image)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ZeroRowsIsNotFound(t *testing.T) {
	mock := newMock(t)
	repo := &ProductRepo{DB: mock}

	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), "p1"))
	err := repo.Delete(context.Background(), "p1")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPesananRepo_UpdateMissingRow(t *testing.T) {
	mock := newMock(t)
	repo := &PesananRepo{DB: mock}

	mock.ExpectQuery(`UPDATE pesanan SET`).
		WithArgs("nope", ptr("selesai"), ptr(int64(50000)), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), "nope", PesananInput{Status: ptr("selesai"), TotalAmount: ptr(int64(50000))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "pesanan nope")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPesananRepo_ListEmbedsUser(t *testing.T) {
	mock := newMock(t)
	repo := &PesananRepo{DB: mock}
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "user_id", "status", "total_amount", "created_at", "updated_at", "users"}).
		AddRow("o1", ptr("u1"), "pending", int64(50000), now, now, &UserRef{Name: "Budi", Phone: ptr("0812")}).
		AddRow("o2", (*string)(nil), "selesai", int64(10000), now, now, (*UserRef)(nil))
	mock.ExpectQuery(`FROM pesanan ps\s+LEFT JOIN users u`).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Budi", got[0].User.Name)
	assert.Nil(t, got[1].User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_ListEmptyIsNonNil(t *testing.T) {
	mock := newMock(t)
	repo := &CartRepo{DB: mock}

	mock.ExpectQuery(`FROM carts ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "quantity", "user_id", "product_id", "created_at", "updated_at"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Role(t *testing.T) {
	mock := newMock(t)
	repo := &UserRepo{DB: mock}

	mock.ExpectQuery(`SELECT role FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow("admin"))
	mock.ExpectQuery(`SELECT role FROM users WHERE id = \$1`).
		WithArgs("u2").
		WillReturnError(pgx.ErrNoRows)

	role, err := repo.Role(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = repo.Role(context.Background(), "u2")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateEmail(t *testing.T) {
	mock := newMock(t)
	repo := &UserRepo{DB: mock}
	now := time.Now().UTC()
	none := (*string)(nil)

	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs("u1", none, ptr("new@example.com"), none, none, none, none, none, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "role", "phone", "address", "image", "remember_token", "created_at", "updated_at"}).
			AddRow("u1", "Budi", ptr("new@example.com"), "customer", none, none, none, none, now, now))

	u, err := repo.Update(context.Background(), "u1", UserInput{Email: ptr("  New@Example.com ")})
	require.NoError(t, err)
	require.NotNil(t, u.Email)
	assert.Equal(t, "new@example.com", *u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
