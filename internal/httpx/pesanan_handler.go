package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
)

var pesananMsgs = msgs{
	listed: "Berhasil mengambil semua pesanan", listFail: "Gagal mengambil data pesanan",
	got: "Berhasil mengambil data pesanan", missing: "Pesanan tidak ditemukan",
	created: "Pesanan berhasil dibuat", createErr: "Gagal membuat pesanan",
	updated: "Pesanan berhasil diperbarui", updateErr: "Gagal memperbarui pesanan",
	deleted: "Pesanan berhasil dihapus", deleteErr: "Gagal menghapus pesanan",
}

type PesananHandler struct {
	Repo PesananStore
	Feed *ChangeFeed
}

func (h *PesananHandler) Register(r chi.Router, g *Guard) {
	r.With(g.Auth, g.Admin).Get("/pesanan", h.list)
	r.Group(func(r chi.Router) {
		r.Use(g.Auth)
		r.Get("/pesanan/mine", h.mine)
		r.Get("/pesanan/{id}", h.get)
		r.Post("/pesanan", h.create)
		r.Put("/pesanan/{id}", h.update)
		r.Delete("/pesanan/{id}", h.remove)
	})
}

func pesananInput(f *form) (shop.PesananInput, error) {
	in := shop.PesananInput{Status: f.text("status")}
	var err error
	if in.TotalAmount, err = f.int64("total_amount"); err != nil {
		return in, err
	}
	return in, validate.Struct(in)
}

func (h *PesananHandler) list(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, pesananMsgs, h.Repo.List)
}

// mine: pesanan milik user yang sedang login.
func (h *PesananHandler) mine(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	ctx, cancel := dbCtx(r)
	defer cancel()

	ps, err := h.Repo.ListByUser(ctx, id.UserID)
	if err != nil {
		fail(w, http.StatusInternalServerError, pesananMsgs.listFail, err)
		return
	}
	respond(w, http.StatusOK, "Berhasil mengambil pesanan Anda", ps)
}

func (h *PesananHandler) get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, pesananMsgs, h.Repo.Get)
}

// create: user_id selalu diambil dari identity, status default pending.
func (h *PesananHandler) create(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.createErr, err)
		return
	}
	in, err := pesananInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.createErr, err)
		return
	}
	id, _ := auth.FromContext(r.Context())
	in.UserID = &id.UserID
	if in.Status == nil {
		s := shop.StatusPending
		in.Status = &s
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	p, err := h.Repo.Create(ctx, in)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.createErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityPesanan, shop.ActionCreated, p.ID, p)
	respond(w, http.StatusCreated, pesananMsgs.created, p)
}

func (h *PesananHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.updateErr, err)
		return
	}
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.updateErr, err)
		return
	}
	in, err := pesananInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.updateErr, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	p, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		fail(w, http.StatusBadRequest, pesananMsgs.updateErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityPesanan, shop.ActionUpdated, p.ID, p)
	respond(w, http.StatusOK, pesananMsgs.updated, p)
}

func (h *PesananHandler) remove(w http.ResponseWriter, r *http.Request) {
	if id := serveRemove(w, r, pesananMsgs, h.Repo.Delete); id != "" {
		h.Feed.Emit(r, shop.EntityPesanan, shop.ActionDeleted, id, nil)
	}
}
