package auth

import "context"

// Identity adalah pemanggil yang sudah terverifikasi.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok && id.UserID != ""
}
