// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the orchestration of the node: for every input item
// it resolves the document attachment, uploads it, creates a signature
// request for the configured signers and activates it.
package service

import (
	"context"

	"github.com/MKhiriev/yousign-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type SignatureRequestService interface {
	// ProcessItem runs the upload, create and activate calls for one item and
	// returns the activation response unmodified.
	ProcessItem(ctx context.Context, index int, item models.Item, params models.Parameters) (models.ActivationResult, error)

	// Execute processes items in order and returns one result per processed
	// item.
	Execute(ctx context.Context, items []models.Item, params models.Parameters) ([]models.ItemResult, error)
}

type ExecutionService interface {
	GetRun(ctx context.Context, runID string) ([]models.ExecutionRecord, error)
	GetOrphanedDocuments(ctx context.Context) ([]models.ExecutionRecord, error)
}
