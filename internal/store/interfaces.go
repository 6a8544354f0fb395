// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence side of the node: the storages that
// resolve binary attachments of items and the execution journal.
package store

import (
	"context"

	"github.com/MKhiriev/yousign-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BinaryDataStorage resolves the content of an item attachment.
type BinaryDataStorage interface {
	// Load returns the attachment content. Inline data wins; otherwise the
	// content is looked up by data.ID. Returns [ErrBinaryDataNotFound] when
	// neither is available.
	Load(ctx context.Context, data models.BinaryData) ([]byte, error)
}

// JournalRepository records what happened to every processed item.
type JournalRepository interface {
	// Record inserts one execution row.
	Record(ctx context.Context, record models.ExecutionRecord) error

	// ListByRun returns the rows of runID ordered by item index.
	ListByRun(ctx context.Context, runID string) ([]models.ExecutionRecord, error)

	// ListOrphanedDocuments returns rows whose document was uploaded but whose
	// signature request was never activated.
	ListOrphanedDocuments(ctx context.Context) ([]models.ExecutionRecord, error)
}

// ErrorClassificator decides whether a failed database operation may be
// attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
