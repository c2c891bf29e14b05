package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-food-orders/internal/auth"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
)

var reviewMsgs = msgs{
	listed: "Berhasil mengambil semua review", listFail: "Gagal mengambil data review",
	got: "Berhasil mengambil data review", missing: "Review tidak ditemukan",
	created: "Review berhasil ditambahkan", createErr: "Gagal menambahkan review",
	updated: "Review berhasil diperbarui", updateErr: "Gagal memperbarui review",
	deleted: "Review berhasil dihapus", deleteErr: "Gagal menghapus review",
}

type ReviewsHandler struct {
	Repo ReviewStore
	Feed *ChangeFeed
}

func (h *ReviewsHandler) Register(r chi.Router, g *Guard) {
	r.With(g.Auth).Get("/produk_reviews", h.list)
	r.With(g.Auth).Get("/produk_reviews/{id}", h.get)
	r.With(g.Auth).Post("/produk_reviews", h.create)
	r.With(g.Auth).Put("/produk_reviews/{id}", h.update)
	r.Delete("/produk_reviews/{id}", h.remove)
}

func reviewInput(f *form) (shop.ReviewInput, error) {
	in := shop.ReviewInput{
		Review:    f.str("review"),
		ProductID: f.str("product_id"),
		UserID:    f.str("user_id"),
	}
	var err error
	if in.Rating, err = f.int("rating"); err != nil {
		return in, err
	}
	return in, validate.Struct(in)
}

func (h *ReviewsHandler) list(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, reviewMsgs, h.Repo.List)
}

func (h *ReviewsHandler) get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, reviewMsgs, h.Repo.Get)
}

func (h *ReviewsHandler) create(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.createErr, err)
		return
	}
	if err := f.require("rating", "product_id"); err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.createErr, err)
		return
	}
	in, err := reviewInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.createErr, err)
		return
	}
	if in.UserID == nil || *in.UserID == "" {
		id, _ := auth.FromContext(r.Context())
		in.UserID = &id.UserID
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	rv, err := h.Repo.Create(ctx, in)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.createErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityReview, shop.ActionCreated, rv.ID, rv)
	respond(w, http.StatusCreated, reviewMsgs.created, rv)
}

func (h *ReviewsHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.updateErr, err)
		return
	}
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.updateErr, err)
		return
	}
	in, err := reviewInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.updateErr, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	rv, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		fail(w, http.StatusBadRequest, reviewMsgs.updateErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityReview, shop.ActionUpdated, rv.ID, rv)
	respond(w, http.StatusOK, reviewMsgs.updated, rv)
}

func (h *ReviewsHandler) remove(w http.ResponseWriter, r *http.Request) {
	if id := serveRemove(w, r, reviewMsgs, h.Repo.Delete); id != "" {
		h.Feed.Emit(r, shop.EntityReview, shop.ActionDeleted, id, nil)
	}
}
