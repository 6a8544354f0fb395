package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/logger"
)

// Storages groups the persistence dependencies of the orchestrator.
type Storages struct {
	BinaryDataStorage BinaryDataStorage
	JournalRepository JournalRepository

	db *DB
}

// NewStorages builds the storages selected by cfg:
//   - binary data: S3 when a bucket is set, the file system when a directory
//     is set, inline-only memory storage otherwise;
//   - journal: SQL (migrated on start) when a DSN is set, no-op otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	binary, err := newBinaryDataStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.DSN == "" {
		log.Info().Msg("execution journal disabled")
		return &Storages{BinaryDataStorage: binary, JournalRepository: NewNopJournal()}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting journal database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &Storages{
		BinaryDataStorage: binary,
		JournalRepository: NewJournalRepository(db, log),
		db:                db,
	}, nil
}

func newBinaryDataStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (BinaryDataStorage, error) {
	switch {
	case cfg.S3.Bucket != "":
		return NewS3BinaryStorage(ctx, cfg.S3, log)
	case cfg.Files.BinaryDataDir != "":
		return NewFileBinaryStorage(cfg.Files.BinaryDataDir, log)
	default:
		return NewMemoryBinaryStorage(), nil
	}
}

// Close releases the journal database and the binary storage resources.
func (s *Storages) Close() error {
	var errs []error
	if closer, ok := s.BinaryDataStorage.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
