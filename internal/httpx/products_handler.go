package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-food-orders/internal/media"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
)

var productMsgs = msgs{
	listed: "Berhasil mengambil semua produk", listFail: "Gagal mengambil data produk",
	got: "Berhasil mengambil data produk", missing: "Produk tidak ditemukan",
	created: "Produk berhasil ditambahkan", createErr: "Gagal menambahkan produk",
	updated: "Produk berhasil diperbarui", updateErr: "Gagal memperbarui produk",
	deleted: "Produk berhasil dihapus", deleteErr: "Gagal menghapus produk",
}

type ProductsHandler struct {
	Repo  ProductStore
	Media *media.Manager
	Feed  *ChangeFeed
}

func (h *ProductsHandler) Register(r chi.Router, g *Guard) {
	r.With(g.Auth).Get("/products", h.list)
	r.With(g.Auth).Get("/products/{id}", h.get)
	r.With(g.Auth).Post("/products", h.create)
	r.With(g.Auth).Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.remove)
}

func productInput(f *form) (shop.ProductInput, error) {
	in := shop.ProductInput{
		Name:        f.text("name"),
		Description: f.str("description"),
	}
	var err error
	if in.Price, err = f.int64("price"); err != nil {
		return in, err
	}
	if in.Stock, err = f.int64("stock"); err != nil {
		return in, err
	}
	return in, validate.Struct(in)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, productMsgs, h.Repo.List)
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, productMsgs, h.Repo.Get)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.createErr, err)
		return
	}
	in, err := productInput(f)
	if err == nil && in.Name == nil {
		err = errNameRequired
	}
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.createErr, err)
		return
	}
	up, closeUpload, err := f.upload("image")
	defer closeUpload()
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.createErr, err)
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	if up != nil {
		url, err := h.Media.Save(ctx, media.FolderProducts, up)
		if err != nil {
			fail(w, http.StatusBadRequest, "Gagal mengupload gambar produk", err)
			return
		}
		in.Image = &url
	}

	p, err := h.Repo.Create(ctx, in)
	if err != nil {
		// row tidak jadi dibuat; gambar yang barusan di-upload ikut dibuang
		h.Media.Discard(ctx, in.Image)
		fail(w, http.StatusBadRequest, productMsgs.createErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityProduct, shop.ActionCreated, p.ID, p)
	respond(w, http.StatusCreated, productMsgs.created, p)
}

// update: ambil row lama untuk tahu URL gambar; file baru menggantikan
// gambar lama, tanpa file gambar lama dipertahankan.
func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.updateErr, err)
		return
	}
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.updateErr, err)
		return
	}
	in, err := productInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.updateErr, err)
		return
	}
	up, closeUpload, err := f.upload("image")
	defer closeUpload()
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.updateErr, err)
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	prev, err := h.Repo.Get(ctx, id)
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.updateErr, err)
		return
	}
	if up != nil {
		url, err := h.Media.Replace(ctx, media.FolderProducts, prev.Image, up)
		if err != nil {
			fail(w, http.StatusBadRequest, "Gagal mengupload gambar produk", err)
			return
		}
		in.Image = &url
	}

	p, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		fail(w, http.StatusBadRequest, productMsgs.updateErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityProduct, shop.ActionUpdated, p.ID, p)
	respond(w, http.StatusOK, productMsgs.updated, p)
}

func (h *ProductsHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusNotFound, productMsgs.missing, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	p, err := h.Repo.Get(ctx, id)
	if err != nil {
		fail(w, missingOr(err, http.StatusBadRequest), productMsgs.missing, err)
		return
	}
	h.Media.Discard(ctx, p.Image)

	if err := h.Repo.Delete(ctx, id); err != nil {
		fail(w, missingOr(err, http.StatusBadRequest), productMsgs.deleteErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityProduct, shop.ActionDeleted, id, nil)
	respond(w, http.StatusOK, productMsgs.deleted, nil)
}
