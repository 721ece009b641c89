package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shohaib/portfolio-cms/internal/content"
	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
)

var extensionByType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Upload validates uploaded files and persists them through a Storage.
type Upload struct {
	storage model.Storage
	allowed map[string]struct{}
	now     func() time.Time
	suffix  func() string
	logger  *logger.Logger
}

// AnyMediaType in the allow-list turns the media type check off.
const AnyMediaType = "*"

// NewUpload creates an Upload accepting the given media types. An empty
// list, or one containing AnyMediaType or "*/*", accepts every type.
func NewUpload(storage model.Storage, allowedTypes []string, logger *logger.Logger) *Upload {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == AnyMediaType || t == "*/*" {
			clear(allowed)
			break
		}
		if t != "" {
			allowed[t] = struct{}{}
		}
	}
	return &Upload{
		storage: storage,
		allowed: allowed,
		now:     time.Now,
		suffix:  randomSuffix,
		logger:  logger,
	}
}

// Check returns ErrUnsupportedMediaType when file is outside the allow-list.
func (u *Upload) Check(file model.File) error {
	if len(u.allowed) == 0 {
		return nil
	}
	mediaType := mediaTypeOf(file.ContentType)
	if _, ok := u.allowed[mediaType]; !ok {
		return fmt.Errorf("%w: %q", model.ErrUnsupportedMediaType, file.ContentType)
	}
	return nil
}

// Save persists file under a fresh key for kind and returns its reference.
func (u *Upload) Save(ctx context.Context, kind model.UploadKind, file model.File) (string, error) {
	if err := u.Check(file); err != nil {
		u.logger.Info("Upload service: rejected file",
			"kind", string(kind),
			"name", file.Name,
			"content_type", file.ContentType)
		return "", err
	}

	key := u.key(kind, file)

	u.logger.Debug("Upload service: storing file",
		"kind", string(kind),
		"key", key,
		"size", file.Size)

	if err := u.storage.Upload(ctx, key, file.Reader, file.Size, mediaTypeOf(file.ContentType)); err != nil {
		u.logger.Error("Upload service: failed to store file",
			"kind", string(kind),
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("%w: %w", model.ErrUploadFailed, err)
	}

	return u.storage.URL(key), nil
}

// Discard removes the blob behind reference. Failures are logged only.
func (u *Upload) Discard(ctx context.Context, reference string) {
	if reference == "" {
		return
	}
	key, ok := u.storage.Key(reference)
	if !ok {
		return
	}
	if err := u.storage.Delete(ctx, key); err != nil {
		u.logger.Warn("Upload service: failed to discard file",
			"key", key,
			"error", err.Error())
	}
}

// key builds "<kind>/<prefix>-<unix millis>-<random><ext>". Projects keep a
// slug of the client file name as prefix. The random part keeps keys unique
// within one millisecond.
func (u *Upload) key(kind model.UploadKind, file model.File) string {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		ext = extensionByType[mediaTypeOf(file.ContentType)]
	}

	var prefix string
	switch kind {
	case model.UploadExperience:
		prefix = "exp"
	case model.UploadEducation:
		prefix = "edu"
	default:
		prefix = content.Slug(strings.TrimSuffix(filepath.Base(file.Name), filepath.Ext(file.Name)))
		if prefix == "" {
			prefix = "image"
		}
	}

	return fmt.Sprintf("%s/%s-%d-%s%s", kind, prefix, u.now().UnixMilli(), u.suffix(), ext)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func mediaTypeOf(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
