package media

import (
	"context"
	"errors"
	"io"
	"sync"
)

// MemoryStore menyimpan object di memori; dipakai test dan dev lokal tanpa storage.
type MemoryStore struct {
	Base   string
	Bucket string

	// RemoveErr, kalau di-set, dikembalikan oleh Remove (simulasi storage error).
	RemoveErr error

	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	removed []string
}

func NewMemoryStore(base, bucket string) *MemoryStore {
	return &MemoryStore{Base: base, Bucket: bucket, objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *MemoryStore) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = b
	s.types[key] = contentType
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, key)
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	if _, ok := s.objects[key]; !ok {
		return errors.New("object not found")
	}
	delete(s.objects, key)
	delete(s.types, key)
	return nil
}

func (s *MemoryStore) PublicURL(key string) string { return publicURL(s.Base, s.Bucket, key) }

// Object mengembalikan isi dan content type object.
func (s *MemoryStore) Object(key string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	return b, s.types[key], ok
}

// Removed: semua key yang pernah diminta dihapus, termasuk yang gagal.
func (s *MemoryStore) Removed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.removed...)
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
