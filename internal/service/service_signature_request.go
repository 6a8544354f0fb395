// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/yousign-node/internal/adapter"
	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/store"
	"github.com/MKhiriev/yousign-node/internal/utils"
	"github.com/MKhiriev/yousign-node/models"
	"github.com/rs/zerolog"
)

const defaultMimeType = "application/octet-stream"

type signatureRequestService struct {
	steps   []pipelineStep
	binary  store.BinaryDataStorage
	journal store.JournalRepository
	ids     *utils.UUIDGenerator

	continueOnFail bool

	logger *logger.Logger
}

func NewSignatureRequestService(yousign adapter.YousignAdapter, storages *store.Storages, cfg config.Node, log *logger.Logger) SignatureRequestService {
	if log == nil {
		log = logger.Nop()
	}
	return &signatureRequestService{
		steps:          newPipeline(yousign),
		binary:         storages.BinaryDataStorage,
		journal:        storages.JournalRepository,
		ids:            utils.NewUUIDGenerator(),
		continueOnFail: cfg.ContinueOnFail,
		logger:         log,
	}
}

func (s *signatureRequestService) ProcessItem(ctx context.Context, index int, item models.Item, params models.Parameters) (models.ActivationResult, error) {
	ctx, runID := s.withRun(ctx)
	return s.processItem(ctx, runID, index, item, params)
}

func (s *signatureRequestService) Execute(ctx context.Context, items []models.Item, params models.Parameters) ([]models.ItemResult, error) {
	ctx, runID := s.withRun(ctx)
	log := logger.FromContext(ctx)

	log.Info().
		Int("items", len(items)).
		Bool("sandbox", params.Sandbox).
		Msg("execution started")

	results := make([]models.ItemResult, 0, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("execution %s interrupted before item %d: %w", runID, i, err)
		}

		result, err := s.processItem(ctx, runID, i, item, params)
		if err != nil {
			if !s.continueOnFail {
				return results, err
			}
			log.Warn().Err(err).Int("item_index", i).Msg("item failed, continuing with the next one")
			results = append(results, models.ItemResult{Index: i, Err: err})
			continue
		}

		results = append(results, models.ItemResult{Index: i, Result: result})
	}

	log.Info().Int("items", len(results)).Msg("execution finished")
	return results, nil
}

func (s *signatureRequestService) processItem(ctx context.Context, runID string, index int, item models.Item, params models.Parameters) (models.ActivationResult, error) {
	log := logger.FromContext(ctx)

	state := &itemState{
		index:   index,
		sandbox: params.Sandbox,
		params:  params,
	}

	upload, err := s.resolveDocument(ctx, index, item, params.BinaryPropertyName)
	if err != nil {
		log.Warn().Err(err).Int("item_index", index).Msg("item rejected")
		s.record(ctx, runID, state, err)
		return nil, err
	}
	state.upload = upload

	for _, step := range s.steps {
		if err = step.Execute(ctx, state); err != nil {
			itemErr := &ItemError{Index: index, Step: step.Name(), Err: err}
			log.Err(itemErr).
				Int("item_index", index).
				Str("document_id", state.documentID).
				Str("signature_request_id", state.signatureRequestID).
				Msg("item failed")
			s.record(ctx, runID, state, itemErr)
			return nil, itemErr
		}
	}

	s.record(ctx, runID, state, nil)
	return state.result, nil
}

// resolveDocument finds the attachment named name on the item and builds the
// upload body from its content.
func (s *signatureRequestService) resolveDocument(ctx context.Context, index int, item models.Item, name string) (*models.DocumentUpload, error) {
	if !item.HasBinary() {
		return nil, &ItemError{Index: index, Err: ErrMissingBinaryData}
	}

	data, ok := item.BinaryProperty(name)
	if !ok {
		return nil, &ItemError{Index: index, PropertyName: name, Err: ErrMissingNamedBinaryProperty}
	}

	content, err := s.binary.Load(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &ItemError{Index: index, Step: StepResolveDocument, PropertyName: name, Err: ctxErr}
		}
		return nil, &ItemError{
			Index:        index,
			Step:         StepResolveDocument,
			PropertyName: name,
			Err:          fmt.Errorf("%w: %w", ErrBinaryDataUnavailable, err),
		}
	}

	fileName := data.FileName
	if fileName == "" {
		fileName = name
	}
	mimeType := data.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	return models.NewSignableDocumentUpload(bytes.NewReader(content), fileName, mimeType), nil
}

// record writes the outcome of an item to the journal. Journal failures never
// fail the item.
func (s *signatureRequestService) record(ctx context.Context, runID string, state *itemState, err error) {
	rec := models.ExecutionRecord{
		RunID:              runID,
		ItemIndex:          state.index,
		Sandbox:            state.sandbox,
		DocumentID:         state.documentID,
		SignatureRequestID: state.signatureRequestID,
		Status:             executionStatus(state, err),
	}
	if err != nil {
		rec.Error = err.Error()
	}

	if jErr := s.journal.Record(ctx, rec); jErr != nil && !errors.Is(jErr, store.ErrJournalDisabled) {
		logger.FromContext(ctx).Warn().
			Err(jErr).
			Int("item_index", state.index).
			Str("status", string(rec.Status)).
			Msg("error recording execution in journal")
	}
}

func executionStatus(state *itemState, err error) models.ExecutionStatus {
	switch {
	case err == nil:
		return models.ExecutionActivated
	case IsInputError(err) || state.upload == nil:
		return models.ExecutionRejected
	case state.documentID == "":
		return models.ExecutionFailed
	default:
		return models.ExecutionDocumentOrphaned
	}
}

// withRun makes sure ctx carries a run id and a logger tagged with it. A
// logger already attached to ctx (for example the request logger of the HTTP
// trigger) is kept as the parent.
func (s *signatureRequestService) withRun(ctx context.Context) (context.Context, string) {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		runID = s.ids.Generate()
		ctx = utils.WithRunID(ctx, runID)
	}

	parent := logger.FromContext(ctx)
	if parent.GetLevel() == zerolog.Disabled {
		parent = s.logger
	}

	return parent.WithFields(map[string]string{"run_id": runID}).WithContext(ctx), runID
}
