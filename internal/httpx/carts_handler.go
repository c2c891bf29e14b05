package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
)

var cartMsgs = msgs{
	listed: "Berhasil mengambil semua keranjang", listFail: "Gagal mengambil data keranjang",
	got: "Berhasil mengambil data keranjang", missing: "Keranjang tidak ditemukan",
	created: "Produk berhasil ditambahkan ke keranjang", createErr: "Gagal menambahkan ke keranjang",
	updated: "Keranjang berhasil diperbarui", updateErr: "Gagal memperbarui keranjang",
	deleted: "Produk berhasil dihapus dari keranjang", deleteErr: "Gagal menghapus dari keranjang",
}

type CartsHandler struct {
	Repo CartStore
	Feed *ChangeFeed
}

func (h *CartsHandler) Register(r chi.Router, g *Guard) {
	r.Group(func(r chi.Router) {
		r.Use(g.Auth)
		r.Get("/carts", h.list)
		r.Get("/carts/{id}", h.get)
		r.Post("/carts", h.create)
		r.Put("/carts/{id}", h.update)
		r.Delete("/carts/{id}", h.remove)
	})
}

func cartInput(f *form) (shop.CartInput, error) {
	in := shop.CartInput{UserID: f.str("user_id"), ProductID: f.str("product_id")}
	var err error
	if in.Quantity, err = f.int("quantity"); err != nil {
		return in, err
	}
	return in, validate.Struct(in)
}

func (h *CartsHandler) list(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, cartMsgs, h.Repo.List)
}

func (h *CartsHandler) get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, cartMsgs, h.Repo.Get)
}

// create: user_id default ke user yang sedang login.
func (h *CartsHandler) create(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.createErr, err)
		return
	}
	if err := f.require("product_id", "quantity"); err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.createErr, err)
		return
	}
	in, err := cartInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.createErr, err)
		return
	}
	if in.UserID == nil || *in.UserID == "" {
		id, _ := auth.FromContext(r.Context())
		in.UserID = &id.UserID
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	c, err := h.Repo.Create(ctx, in)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.createErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityCart, shop.ActionCreated, c.ID, c)
	respond(w, http.StatusCreated, cartMsgs.created, c)
}

func (h *CartsHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.updateErr, err)
		return
	}
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.updateErr, err)
		return
	}
	in, err := cartInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.updateErr, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	c, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		fail(w, http.StatusBadRequest, cartMsgs.updateErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityCart, shop.ActionUpdated, c.ID, c)
	respond(w, http.StatusOK, cartMsgs.updated, c)
}

func (h *CartsHandler) remove(w http.ResponseWriter, r *http.Request) {
	if id := serveRemove(w, r, cartMsgs, h.Repo.Delete); id != "" {
		h.Feed.Emit(r, shop.EntityCart, shop.ActionDeleted, id, nil)
	}
}
