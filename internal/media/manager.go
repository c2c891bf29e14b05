package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	FolderProducts = "products"
	FolderAvatars  = "avatars"
)

// Upload adalah file dari request multipart.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Manager mengatur siklus hidup gambar: simpan, ganti, buang.
// Hapus object selalu best-effort: gagal cuma di-log, operasi utama jalan terus.
type Manager struct {
	Store ObjectStore
	Log   logrus.FieldLogger
}

// Save meng-upload file ke <folder>/<uuid><ext> dan mengembalikan URL publiknya.
func (m *Manager) Save(ctx context.Context, folder string, up *Upload) (string, error) {
	key := folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(up.Filename))
	ct := up.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	if err := m.Store.Put(ctx, key, up.Body, up.Size, ct); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return m.Store.PublicURL(key), nil
}

// Replace membuang gambar lama (best-effort) lalu meng-upload yang baru.
func (m *Manager) Replace(ctx context.Context, folder string, prev *string, up *Upload) (string, error) {
	m.Discard(ctx, prev)
	return m.Save(ctx, folder, up)
}

// Discard menghapus object di balik URL. URL di luar bucket (link eksternal) diabaikan.
func (m *Manager) Discard(ctx context.Context, url *string) {
	if url == nil || *url == "" {
		return
	}
	key, ok := m.KeyFromURL(*url)
	if !ok {
		m.Log.WithField("url", *url).Debug("image bukan milik bucket, skip hapus")
		return
	}
	if err := m.Store.Remove(ctx, key); err != nil {
		m.Log.WithError(err).WithField("key", key).Warn("gagal menghapus image lama")
	}
}

func (m *Manager) KeyFromURL(url string) (string, bool) {
	prefix := m.Store.PublicURL("")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}
