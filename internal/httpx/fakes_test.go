package httpx

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

func missing(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, shop.ErrNotFound)
}

type fakeSessions map[string]auth.Identity

func (s fakeSessions) Resolve(_ context.Context, token string) (auth.Identity, error) {
	id, ok := s[token]
	if !ok {
		return auth.Identity{}, auth.ErrNoSession
	}
	return id, nil
}

type fakeRoles map[string]string

func (f fakeRoles) Role(_ context.Context, userID string) (string, error) {
	role, ok := f[userID]
	if !ok {
		return "", missing("user", userID)
	}
	return role, nil
}

type recordingPub struct {
	mu   sync.Mutex
	msgs []kafkago.Message
}

func (p *recordingPub) Publish(key, value []byte, headers ...kafkago.Header) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, kafkago.Message{Key: key, Value: value, Headers: headers})
}

func (p *recordingPub) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		for _, h := range m.Headers {
			if h.Key == "x-event-type" {
				out = append(out, string(h.Value))
			}
		}
	}
	return out
}

// ---- products ----

type fakeProducts struct {
	mu    sync.Mutex
	rows  map[string]shop.Product
	calls int
}

func newFakeProducts() *fakeProducts { return &fakeProducts{rows: map[string]shop.Product{}} }

func (f *fakeProducts) List(context.Context) ([]shop.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make([]shop.Product, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) Get(_ context.Context, id string) (shop.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p, ok := f.rows[id]
	if !ok {
		return shop.Product{}, missing("product", id)
	}
	return p, nil
}

func (f *fakeProducts) Create(_ context.Context, in shop.ProductInput) (shop.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	now := time.Now().UTC()
	p := shop.Product{ID: uuid.NewString(), Description: in.Description, Image: in.Image, CreatedAt: now, UpdatedAt: now}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, id string, in shop.ProductInput) (shop.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p, ok := f.rows[id]
	if !ok {
		return shop.Product{}, missing("product", id)
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Image != nil {
		p.Image = in.Image
	}
	p.UpdatedAt = time.Now().UTC()
	f.rows[id] = p
	return p, nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return missing("product", id)
	}
	delete(f.rows, id)
	return nil
}

// ---- users (juga dipakai auth.Service) ----

type fakeUsers struct {
	mu   sync.Mutex
	rows map[string]shop.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{rows: map[string]shop.User{}} }

func (f *fakeUsers) add(u shop.User) shop.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.rows[u.ID] = u
	return u
}

func (f *fakeUsers) List(context.Context) ([]shop.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]shop.User, 0, len(f.rows))
	for _, u := range f.rows {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Get(_ context.Context, id string) (shop.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return shop.User{}, missing("user", id)
	}
	return u, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (shop.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email != nil && strings.EqualFold(*u.Email, email) {
			return u, nil
		}
	}
	return shop.User{}, missing("user", email)
}

func (f *fakeUsers) Create(_ context.Context, in shop.UserInput) (shop.User, error) {
	u := shop.User{Role: shop.RoleCustomer, Email: in.Email, PasswordHash: in.PasswordHash,
		Phone: in.Phone, Address: in.Address, Image: in.Image}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	return f.add(u), nil
}

func (f *fakeUsers) Update(_ context.Context, id string, in shop.UserInput) (shop.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return shop.User{}, missing("user", id)
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = in.Email
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.Image != nil {
		u.Image = in.Image
	}
	f.rows[id] = u
	return u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return missing("user", id)
	}
	delete(f.rows, id)
	return nil
}

// ---- pesanan ----

type fakePesanan struct {
	rows map[string]shop.Pesanan
}

func (f *fakePesanan) List(context.Context) ([]shop.Pesanan, error) {
	out := make([]shop.Pesanan, 0, len(f.rows))
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePesanan) ListByUser(_ context.Context, userID string) ([]shop.Pesanan, error) {
	out := []shop.Pesanan{}
	for _, p := range f.rows {
		if p.UserID != nil && *p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePesanan) Get(_ context.Context, id string) (shop.Pesanan, error) {
	p, ok := f.rows[id]
	if !ok {
		return shop.Pesanan{}, missing("pesanan", id)
	}
	return p, nil
}

func (f *fakePesanan) Create(_ context.Context, in shop.PesananInput) (shop.Pesanan, error) {
	p := shop.Pesanan{ID: uuid.NewString(), UserID: in.UserID, Status: *in.Status}
	if in.TotalAmount != nil {
		p.TotalAmount = *in.TotalAmount
	}
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakePesanan) Update(_ context.Context, id string, in shop.PesananInput) (shop.Pesanan, error) {
	p, ok := f.rows[id]
	if !ok {
		return shop.Pesanan{}, missing("pesanan", id)
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.TotalAmount != nil {
		p.TotalAmount = *in.TotalAmount
	}
	f.rows[id] = p
	return p, nil
}

func (f *fakePesanan) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return missing("pesanan", id)
	}
	delete(f.rows, id)
	return nil
}

// ---- carts ----

type fakeCarts struct {
	created []shop.CartInput
}

func (f *fakeCarts) List(context.Context) ([]shop.Cart, error) { return []shop.Cart{}, nil }

func (f *fakeCarts) Get(_ context.Context, id string) (shop.Cart, error) {
	return shop.Cart{}, missing("cart", id)
}

func (f *fakeCarts) Create(_ context.Context, in shop.CartInput) (shop.Cart, error) {
	f.created = append(f.created, in)
	return shop.Cart{ID: uuid.NewString(), Quantity: *in.Quantity, UserID: *in.UserID, ProductID: *in.ProductID}, nil
}

func (f *fakeCarts) Update(_ context.Context, id string, _ shop.CartInput) (shop.Cart, error) {
	return shop.Cart{}, missing("cart", id)
}

func (f *fakeCarts) Delete(_ context.Context, id string) error { return missing("cart", id) }

// ---- reviews ----

type fakeReviews struct {
	created []shop.ReviewInput
}

func (f *fakeReviews) List(context.Context) ([]shop.Review, error) { return []shop.Review{}, nil }

func (f *fakeReviews) Get(_ context.Context, id string) (shop.Review, error) {
	return shop.Review{}, missing("review", id)
}

func (f *fakeReviews) Create(_ context.Context, in shop.ReviewInput) (shop.Review, error) {
	f.created = append(f.created, in)
	return shop.Review{ID: uuid.NewString(), Rating: *in.Rating, Review: in.Review, ProductID: in.ProductID, UserID: in.UserID}, nil
}

func (f *fakeReviews) Update(_ context.Context, id string, _ shop.ReviewInput) (shop.Review, error) {
	return shop.Review{}, missing("review", id)
}

func (f *fakeReviews) Delete(_ context.Context, id string) error { return missing("review", id) }

// ---- order items ----

type fakeOrderItems struct{}

func (fakeOrderItems) List(context.Context) ([]shop.OrderItem, error) { return []shop.OrderItem{}, nil }

func (fakeOrderItems) Get(_ context.Context, id string) (shop.OrderItem, error) {
	return shop.OrderItem{}, missing("order item", id)
}

func (fakeOrderItems) Create(_ context.Context, in shop.OrderItemInput) (shop.OrderItem, error) {
	return shop.OrderItem{ID: uuid.NewString(), Quantity: *in.Quantity, PesananID: *in.PesananID, ProductID: *in.ProductID}, nil
}

func (fakeOrderItems) Update(_ context.Context, id string, _ shop.OrderItemInput) (shop.OrderItem, error) {
	return shop.OrderItem{}, missing("order item", id)
}

func (fakeOrderItems) Delete(_ context.Context, id string) error { return missing("order item", id) }
