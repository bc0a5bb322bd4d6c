package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Kind selects the folder an asset lands in and whether it is preprocessed.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindPDF   Kind = "pdf"
)

// KeyPrefix is the root folder of every object written by the service.
const KeyPrefix = "humancapital"

// ErrNotConfigured is returned by Upload when credentials are missing or placeholders.
var ErrNotConfigured = errors.New("media storage is not configured")

// Asset is an in-memory file buffer received from a multipart request.
type Asset struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Store persists assets and returns their public URL.
type Store interface {
	Upload(ctx context.Context, asset Asset, kind Kind) (string, error)
}

// Config mirrors the STORAGE_* and S3_* environment variables.
type Config struct {
	Type            string // s3 | local
	LocalPath       string
	PublicBaseURL   string
	Provider        string // aws | custom
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string
}

// New builds the backend selected by cfg.Type. A misconfigured S3 backend is
// not a startup error: every Upload on it returns ErrNotConfigured instead.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Type) {
	case "local":
		return NewLocalStore(cfg.LocalPath, cfg.PublicBaseURL)
	case "", "s3":
		if !cfg.s3Configured() {
			return unconfiguredStore{}, nil
		}
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

func (c Config) s3Configured() bool {
	for _, v := range []string{c.AccessKeyID, c.SecretAccessKey, c.Bucket} {
		if IsPlaceholder(v) {
			return false
		}
	}
	if strings.EqualFold(c.Provider, "custom") && IsPlaceholder(c.Endpoint) {
		return false
	}
	return true
}

var placeholderMarkers = []string{"your_", "your-", "changeme", "placeholder", "xxx"}

// IsPlaceholder reports whether a credential is empty or an obvious template value.
func IsPlaceholder(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return true
	}
	for _, m := range placeholderMarkers {
		if strings.Contains(v, m) {
			return true
		}
	}
	return false
}

type unconfiguredStore struct{}

func (unconfiguredStore) Upload(context.Context, Asset, Kind) (string, error) {
	return "", ErrNotConfigured
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename keeps an ASCII-safe base name, collapsing anything else to "_".
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > 100 {
		ext := filepath.Ext(name)
		if len(ext) > 10 {
			ext = ""
		}
		name = name[:100-len(ext)] + ext
	}
	return name
}

// ObjectKey returns humancapital/<kind>s/<uuid>_<filename>.
func ObjectKey(kind Kind, filename string) string {
	return fmt.Sprintf("%s/%ss/%s_%s", KeyPrefix, kind, uuid.NewString(), SanitizeFilename(filename))
}

// prepare applies per-kind preprocessing shared by all backends.
func prepare(asset Asset, kind Kind) Asset {
	if kind != KindImage {
		return asset
	}
	compressed, err := CompressImage(asset.Data, MaxImageDimension, JPEGQuality)
	if err != nil {
		return asset
	}
	base := strings.TrimSuffix(asset.Filename, filepath.Ext(asset.Filename))
	return Asset{Data: compressed, Filename: base + ".jpg", ContentType: "image/jpeg"}
}
