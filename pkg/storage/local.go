package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalURLPrefix is the route the router serves LocalStore files from.
const LocalURLPrefix = "/uploads"

// LocalStore writes assets under a directory; intended for development.
type LocalStore struct {
	root       string
	publicBase string
}

func NewLocalStore(root, publicBase string) (*LocalStore, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: root, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

// Root is the directory served under LocalURLPrefix.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Upload(ctx context.Context, asset Asset, kind Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	asset = prepare(asset, kind)
	key := ObjectKey(kind, asset.Filename)

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create dir for %s: %w", key, err)
	}
	if err := os.WriteFile(path, asset.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", key, err)
	}

	return s.publicBase + LocalURLPrefix + "/" + key, nil
}
