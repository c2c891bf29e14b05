package httpx

import (
	"net/http"

	"github.com/ariefcatur/go-food-orders/internal/media"
	"github.com/ariefcatur/go-food-orders/internal/shop"
	"github.com/go-chi/chi/v5"
)

var userMsgs = msgs{
	listed: "Berhasil mengambil semua user", listFail: "Gagal mengambil data user",
	got: "Berhasil mengambil data user", missing: "User tidak ditemukan",
	created: "User berhasil ditambahkan", createErr: "Gagal menambahkan user",
	updated: "User berhasil diperbarui", updateErr: "Gagal memperbarui user",
	deleted: "User berhasil dihapus", deleteErr: "Gagal menghapus user",
}

type UsersHandler struct {
	Repo  UserStore
	Media *media.Manager
	Feed  *ChangeFeed
}

func (h *UsersHandler) Register(r chi.Router, g *Guard) {
	r.Group(func(r chi.Router) {
		r.Use(g.Auth)
		r.Get("/users", h.list)
		r.Get("/users/{id}", h.get)
		r.Post("/users", h.create)
		r.Put("/users/{id}", h.update)
		r.Delete("/users/{id}", h.remove)
	})
}

func userInput(f *form) (shop.UserInput, error) {
	in := shop.UserInput{
		Name:          f.text("name"),
		Email:         f.str("email"),
		Role:          f.str("role"),
		Phone:         f.str("phone"),
		Address:       f.str("address"),
		Image:         f.str("image", "avatar"),
		RememberToken: f.str("remember_token"),
	}
	return in, validate.Struct(in)
}

func (h *UsersHandler) list(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, userMsgs, h.Repo.List)
}

func (h *UsersHandler) get(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, userMsgs, h.Repo.Get)
}

func (h *UsersHandler) create(w http.ResponseWriter, r *http.Request) {
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.createErr, err)
		return
	}
	in, err := userInput(f)
	if err == nil && in.Name == nil {
		err = errNameRequired
	}
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.createErr, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	u, err := h.Repo.Create(ctx, in)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.createErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityUser, shop.ActionCreated, u.ID, u)
	respond(w, http.StatusCreated, userMsgs.created, u)
}

// update: file "image"/"avatar" menggantikan avatar lama; field teks "image"
// atau "avatar" dipakai apa adanya sebagai URL baru; tanpa keduanya avatar
// lama dipertahankan.
func (h *UsersHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.updateErr, err)
		return
	}
	f, err := readForm(r)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.updateErr, err)
		return
	}
	in, err := userInput(f)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.updateErr, err)
		return
	}
	up, closeUpload, err := f.upload("image", "avatar")
	defer closeUpload()
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.updateErr, err)
		return
	}

	ctx, cancel := dbCtx(r)
	defer cancel()

	prev, err := h.Repo.Get(ctx, id)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.updateErr, err)
		return
	}
	if up != nil {
		url, err := h.Media.Replace(ctx, media.FolderAvatars, prev.Image, up)
		if err != nil {
			fail(w, http.StatusBadRequest, "Gagal mengupload avatar", err)
			return
		}
		in.Image = &url
	}

	u, err := h.Repo.Update(ctx, id, in)
	if err != nil {
		fail(w, http.StatusBadRequest, userMsgs.updateErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityUser, shop.ActionUpdated, u.ID, u)
	respond(w, http.StatusOK, userMsgs.updated, u)
}

func (h *UsersHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusNotFound, userMsgs.missing, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	u, err := h.Repo.Get(ctx, id)
	if err != nil {
		fail(w, missingOr(err, http.StatusBadRequest), userMsgs.missing, err)
		return
	}
	h.Media.Discard(ctx, u.Image)

	if err := h.Repo.Delete(ctx, id); err != nil {
		fail(w, missingOr(err, http.StatusBadRequest), userMsgs.deleteErr, err)
		return
	}
	h.Feed.Emit(r, shop.EntityUser, shop.ActionDeleted, id, nil)
	respond(w, http.StatusOK, userMsgs.deleted, nil)
}
