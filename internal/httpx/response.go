package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Envelope adalah bentuk response untuk semua endpoint.
type Envelope struct {
	Status bool   `json:"status"`
	Pesan  string `json:"pesan"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

const dbTimeout = 5 * time.Second

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respond(w http.ResponseWriter, code int, pesan string, data any) {
	writeJSON(w, code, Envelope{Status: true, Pesan: pesan, Data: data})
}

func fail(w http.ResponseWriter, code int, pesan string, err error) {
	env := Envelope{Status: false, Pesan: pesan}
	if err != nil {
		env.Error = err.Error()
	}
	writeJSON(w, code, env)
}

// missingOr: baris tidak ada -> 404, selain itu code.
func missingOr(err error, code int) int {
	if errors.Is(err, shop.ErrNotFound) {
		return http.StatusNotFound
	}
	return code
}

func dbCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), dbTimeout)
}

// pathID memvalidasi {id} sebagai UUID sebelum menyentuh database.
// id yang bukan UUID pasti tidak ada barisnya, jadi dibungkus ErrNotFound.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid id %q: %w", id, shop.ErrNotFound)
	}
	return id, nil
}
