package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/ariefcatur/go-food-orders/internal/media"
	"github.com/go-playground/validator/v10"
)

const maxUploadMemory = 10 << 20

var validate = validator.New()

var errNameRequired = errors.New("field name is required")

// form adalah body request yang diratakan ke string, baik dari JSON
// maupun multipart/urlencoded. Key yang tidak ada = field tidak dikirim.
type form struct {
	values map[string]string
	files  map[string]*multipart.FileHeader
}

func readForm(r *http.Request) (*form, error) {
	f := &form{values: map[string]string{}, files: map[string]*multipart.FileHeader{}}
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mt {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, fmt.Errorf("invalid multipart body: %w", err)
		}
		for k, vs := range r.MultipartForm.Value {
			if len(vs) > 0 {
				f.values[k] = vs[0]
			}
		}
		for k, fhs := range r.MultipartForm.File {
			if len(fhs) > 0 {
				f.files[k] = fhs[0]
			}
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		for k := range r.PostForm {
			f.values[k] = r.PostForm.Get(k)
		}
	default:
		if r.Body == nil {
			return f, nil
		}
		var raw map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		for k, v := range raw {
			switch t := v.(type) {
			case nil:
				// null diperlakukan sama dengan tidak dikirim
			case string:
				f.values[k] = t
			case json.Number:
				f.values[k] = t.String()
			case bool:
				f.values[k] = strconv.FormatBool(t)
			default:
				return nil, fmt.Errorf("field %s: unsupported value type", k)
			}
		}
	}
	return f, nil
}

// str mengembalikan nilai field pertama yang ada dari keys (alias).
func (f *form) str(keys ...string) *string {
	for _, k := range keys {
		if v, ok := f.values[k]; ok {
			return &v
		}
	}
	return nil
}

// text seperti str, tapi string kosong atau spasi saja = tidak dikirim.
// Dipakai untuk kolom NOT NULL yang tidak boleh dikosongkan lewat update.
func (f *form) text(keys ...string) *string {
	v := f.str(keys...)
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

// int64 menerima 25000, "25000", dan "25000.0"; string kosong = tidak dikirim.
func (f *form) int64(key string) (*int64, error) {
	v, ok := f.values[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || fl != math.Trunc(fl) || math.Abs(fl) > math.MaxInt64 {
			return nil, fmt.Errorf("field %s must be an integer, got %q", key, v)
		}
		n = int64(fl)
	}
	return &n, nil
}

func (f *form) int(key string) (*int, error) {
	n, err := f.int64(key)
	if n == nil || err != nil {
		return nil, err
	}
	v := int(*n)
	return &v, nil
}

// upload membuka file pertama yang ada dari keys. close harus selalu dipanggil.
func (f *form) upload(keys ...string) (*media.Upload, func(), error) {
	for _, k := range keys {
		fh, ok := f.files[k]
		if !ok {
			continue
		}
		file, err := fh.Open()
		if err != nil {
			return nil, func() {}, fmt.Errorf("open upload %s: %w", k, err)
		}
		return &media.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        file,
		}, func() { _ = file.Close() }, nil
	}
	return nil, func() {}, nil
}

// require memastikan semua field ada dan tidak kosong.
func (f *form) require(keys ...string) error {
	for _, k := range keys {
		if strings.TrimSpace(f.values[k]) == "" {
			return fmt.Errorf("field %s is required", k)
		}
	}
	return nil
}
