package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/models"
)

// fileBinaryStorage resolves attachment IDs as paths relative to a base
// directory.
type fileBinaryStorage struct {
	root   *os.Root
	dir    string
	logger *logger.Logger
}

// NewFileBinaryStorage opens dir as the storage root. IDs escaping dir
// (absolute paths, "..", symlinks pointing outside) are rejected.
func NewFileBinaryStorage(dir string, log *logger.Logger) (BinaryDataStorage, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("error opening binary data directory: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("file binary storage opened")
	return &fileBinaryStorage{root: root, dir: dir, logger: log}, nil
}

// Load implements [BinaryDataStorage].
func (s *fileBinaryStorage) Load(ctx context.Context, data models.BinaryData) ([]byte, error) {
	if data.Data != nil {
		return data.Data, nil
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%w: empty id", ErrBinaryDataNotFound)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := filepath.Clean(filepath.FromSlash(data.ID))
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBinaryDataID, data.ID)
	}

	content, err := s.root.ReadFile(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", ErrBinaryDataNotFound, data.ID)
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("id", data.ID).Msg("error reading binary data file")
		return nil, fmt.Errorf("error reading binary data %q: %w", data.ID, err)
	}

	return content, nil
}

// Close releases the storage root.
func (s *fileBinaryStorage) Close() error {
	return s.root.Close()
}
