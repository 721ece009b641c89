// Package local stores uploads on the local filesystem and serves them back
// as static files.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/shohaib/portfolio-cms/internal/model"
)

var (
	_ model.Storage          = (*Disk)(nil)
	_ model.ReferenceChecker = (*Disk)(nil)
)

// Disk keeps uploads under root and references them below publicPrefix.
type Disk struct {
	root         string
	publicPrefix string
}

// NewDisk creates root if needed.
func NewDisk(root, publicPrefix string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Disk{
		root:         root,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
	}, nil
}

// path resolves key below root, rejecting keys that escape it.
func (d *Disk) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// Upload writes through a temp file so a failed write never leaves a
// partial file under key.
func (d *Disk) Upload(ctx context.Context, key string, reader io.Reader, _ int64, _ string) error {
	dst, err := d.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, contextReader{ctx: ctx, r: reader}); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("failed to store upload: %w", err)
	}

	return nil
}

func (d *Disk) Delete(_ context.Context, key string) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

func (d *Disk) Exists(_ context.Context, key string) (bool, error) {
	p, err := d.path(key)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat upload: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

func (d *Disk) URL(key string) string {
	return d.publicPrefix + "/" + strings.TrimPrefix(key, "/")
}

func (d *Disk) Key(reference string) (string, bool) {
	key, ok := strings.CutPrefix(reference, d.publicPrefix+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// ReferenceExists reports whether reference points at a file on disk.
// Absolute http(s) references are outside this store and are trusted.
func (d *Disk) ReferenceExists(ctx context.Context, reference string) bool {
	key, ok := d.Key(reference)
	if !ok {
		return strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://")
	}
	exists, err := d.Exists(ctx, key)
	return err == nil && exists
}

// PublicPrefix is the URL path uploads are served under.
func (d *Disk) PublicPrefix() string {
	return d.publicPrefix
}

// Handler serves stored files below PublicPrefix. Directory listings are
// not exposed.
func (d *Disk) Handler() http.Handler {
	fs := http.FileServer(http.Dir(d.root))
	return http.StripPrefix(d.publicPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	}))
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
