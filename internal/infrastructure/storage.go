package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arpitsharma-bit/peextrap/config"
)

// LocalStorage keeps uploaded files on the local disk and serves them
// through the static /uploads route.
type LocalStorage struct {
	Dir     string
	BaseURL string
}

func NewLocalStorage(cfg *config.Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", cfg.Storage.Dir, err)
	}
	return &LocalStorage{
		Dir:     cfg.Storage.Dir,
		BaseURL: strings.TrimRight(cfg.Storage.BaseURL, "/"),
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, filename string, data []byte) (string, error) {
	// Uploads carry client-supplied names; never let them escape the dir.
	clean := filepath.Base(filename)

	path := filepath.Join(s.Dir, clean)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return s.BaseURL + "/" + clean, nil
}

func (s *LocalStorage) Remove(ctx context.Context, filename string) error {
	clean := filepath.Base(filename)
	path := filepath.Join(s.Dir, clean)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
