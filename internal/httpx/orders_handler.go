package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
)

var orderItemMsgs = msgs{
	listed: "Berhasil mengambil semua item pesanan", listFail: "Gagal mengambil data item pesanan",
	got: "Berhasil mengambil data item pesanan", missing: "Item pesanan tidak ditemukan",
	created: "Item pesanan berhasil ditambahkan", createErr: "Gagal menambahkan item pesanan",
	updated: "Item pesanan berhasil diperbarui", updateErr: "Gagal memperbarui item pesanan",
	deleted: "Item pesanan berhasil dihapus", deleteErr: "Gagal menghapus item pesanan",
}

// OrdersHandler melayani /orders, yaitu baris order_items dari sebuah pesanan.
type OrdersHandler struct {
	Repo OrderItemStore
	Feed *ChangeFeed
}

func (h *OrdersHandler) Register(r chi.Router, g *Guard) {
	r.With(g.Auth).Get("/orders", h.list)
	r.With(g.Auth).Get("/orders/{id}", h.get)
	r.With(g.Auth).Post("/orders", h.create)
	r.With(g.Auth).Put("/orders/{id}", h.update)
	r.Delete("/orders/{id}", h.remove)
}

func orderItemInput(f *form) (shop.OrderItemInput, error) {
	in := shop.OrderItemInput{PesananID: f.str("pesanan_id"), ProductID: f.str("product_id")}
	var err error
	if in.Quantity, err = f.int("quantity"); err != nil {
		return in, err
	}
	return in, validate.Struct(in)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, orderItemMsgs, h.Repo.List)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, orderItemMsgs, h.Repo.Get)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.createErr, err)
		return
	}
	if err := f.require("pesanan_id", "product_id", "quantity"); err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.createErr, err)
		return
	}
	in, err := orderItemInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.createErr, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	o, err := h.Repo.Create(ctx, in)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.createErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityOrderItem, shop.ActionCreated, o.ID, o)
	respond(w, http.StatusCreated, orderItemMsgs.created, o)
}

func (h *OrdersHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.updateErr, err)
		return
	}
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.updateErr, err)
		return
	}
	in, err := orderItemInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.updateErr, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	o, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		fail(w, http.StatusBadRequest, orderItemMsgs.updateErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityOrderItem, shop.ActionUpdated, o.ID, o)
	respond(w, http.StatusOK, orderItemMsgs.updated, o)
}

func (h *OrdersHandler) remove(w http.ResponseWriter, r *http.Request) {
	if id := serveRemove(w, r, orderItemMsgs, h.Repo.Delete); id != "" {
		h.Feed.Emit(r, shop.EntityOrderItem, shop.ActionDeleted, id, nil)
	}
}
