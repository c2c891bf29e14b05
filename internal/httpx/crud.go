package httpx

import (
	"context"
	"net/http"
)

// msgs adalah pesan per resource untuk operasi CRUD standar.
type msgs struct {
	listed, listFail   string
	got, missing       string
	created, createErr string
	updated, updateErr string
	deleted, deleteErr string
}

func serveList[T any](w http.ResponseWriter, r *http.Request, m msgs, list func(context.Context) ([]T, error)) {
	ctx, cancel := dbCtx(r)
	defer cancel()

	rows, err := list(ctx)
	if err != nil {
		fail(w, http.StatusInternalServerError, m.listFail, err)
		return
	}
	respond(w, http.StatusOK, m.listed, rows)
}

// serveGet: kegagalan apa pun saat lookup dianggap 404.
func serveGet[T any](w http.ResponseWriter, r *http.Request, m msgs, get func(context.Context, string) (T, error)) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusNotFound, m.missing, err)
		return
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	row, err := get(ctx, id)
	if err != nil {
		fail(w, http.StatusNotFound, m.missing, err)
		return
	}
	respond(w, http.StatusOK, m.got, row)
}

// serveRemove mengembalikan id yang terhapus, "" kalau gagal (response sudah ditulis).
func serveRemove(w http.ResponseWriter, r *http.Request, m msgs, del func(context.Context, string) error) string {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusNotFound, m.missing, err)
		return ""
	}
	ctx, cancel := dbCtx(r)
	defer cancel()

	if err := del(ctx, id); err != nil {
		fail(w, missingOr(err, http.StatusBadRequest), m.deleteErr, err)
		return ""
	}
	respond(w, http.StatusOK, m.deleted, nil)
	return id
}
