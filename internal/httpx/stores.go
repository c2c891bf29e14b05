package httpx

import (
	"context"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/shop"
)

// Interface repository yang dipakai handler; implementasinya ada di package shop.

type ProductStore interface {
	List(ctx context.Context) ([]shop.Product, error)
	Get(ctx context.Context, id string) (shop.Product, error)
	Create(ctx context.Context, in shop.ProductInput) (shop.Product, error)
	Update(ctx context.Context, id string, in shop.ProductInput) (shop.Product, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	List(ctx context.Context) ([]shop.User, error)
	Get(ctx context.Context, id string) (shop.User, error)
	Create(ctx context.Context, in shop.UserInput) (shop.User, error)
	Update(ctx context.Context, id string, in shop.UserInput) (shop.User, error)
	Delete(ctx context.Context, id string) error
}

type CartStore interface {
	List(ctx context.Context) ([]shop.Cart, error)
	Get(ctx context.Context, id string) (shop.Cart, error)
	Create(ctx context.Context, in shop.CartInput) (shop.Cart, error)
	Update(ctx context.Context, id string, in shop.CartInput) (shop.Cart, error)
	Delete(ctx context.Context, id string) error
}

type PesananStore interface {
	List(ctx context.Context) ([]shop.Pesanan, error)
	ListByUser(ctx context.Context, userID string) ([]shop.Pesanan, error)
	Get(ctx context.Context, id string) (shop.Pesanan, error)
	Create(ctx context.Context, in shop.PesananInput) (shop.Pesanan, error)
	Update(ctx context.Context, id string, in shop.PesananInput) (shop.Pesanan, error)
	Delete(ctx context.Context, id string) error
}

type OrderItemStore interface {
	List(ctx context.Context) ([]shop.OrderItem, error)
	Get(ctx context.Context, id string) (shop.OrderItem, error)
	Create(ctx context.Context, in shop.OrderItemInput) (shop.OrderItem, error)
	Update(ctx context.Context, id string, in shop.OrderItemInput) (shop.OrderItem, error)
	Delete(ctx context.Context, id string) error
}

type ReviewStore interface {
	List(ctx context.Context) ([]shop.Review, error)
	Get(ctx context.Context, id string) (shop.Review, error)
	Create(ctx context.Context, in shop.ReviewInput) (shop.Review, error)
	Update(ctx context.Context, id string, in shop.ReviewInput) (shop.Review, error)
	Delete(ctx context.Context, id string) error
}

// Accounts dipakai endpoint auth.
type Accounts interface {
	Register(ctx context.Context, in auth.RegisterInput) (shop.User, error)
	Login(ctx context.Context, email, password string) (auth.Session, error)
	Logout(ctx context.Context, token string) error
}
