package service

import (
	"context"

	"github.com/MKhiriev/yousign-node/internal/adapter"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/models"
)

// itemState is threaded through the pipeline. Each step fills the identifier
// the next one needs.
type itemState struct {
	index   int
	sandbox bool
	params  models.Parameters
	upload  *models.DocumentUpload

	documentID         string
	signatureRequestID string
	result             models.ActivationResult
}

type pipelineStep interface {
	Name() string
	Execute(ctx context.Context, state *itemState) error
}

func newPipeline(yousign adapter.YousignAdapter) []pipelineStep {
	return []pipelineStep{
		&uploadDocumentStep{adapter: yousign},
		&createSignatureRequestStep{adapter: yousign},
		&activateSignatureRequestStep{adapter: yousign},
	}
}

// ── Upload ──

type uploadDocumentStep struct {
	adapter adapter.YousignAdapter
}

func (s *uploadDocumentStep) Name() string { return StepUploadDocument }

func (s *uploadDocumentStep) Execute(ctx context.Context, state *itemState) error {
	id, err := s.adapter.UploadDocument(ctx, state.sandbox, state.upload)
	if err != nil {
		return err
	}
	state.documentID = id

	logger.FromContext(ctx).Debug().
		Int("item_index", state.index).
		Str("document_id", id).
		Msg("document uploaded")
	return nil
}

// ── Create ──

type createSignatureRequestStep struct {
	adapter adapter.YousignAdapter
}

func (s *createSignatureRequestStep) Name() string { return StepCreateSignatureRequest }

func (s *createSignatureRequestStep) Execute(ctx context.Context, state *itemState) error {
	body := BuildSignatureRequestBody(state.params.Name, state.documentID, MapSigners(state.params.Signers))

	id, err := s.adapter.CreateSignatureRequest(ctx, state.sandbox, body)
	if err != nil {
		return err
	}
	state.signatureRequestID = id

	logger.FromContext(ctx).Debug().
		Int("item_index", state.index).
		Str("signature_request_id", id).
		Int("signers", len(body.Signers)).
		Msg("signature request created")
	return nil
}

// ── Activate ──

type activateSignatureRequestStep struct {
	adapter adapter.YousignAdapter
}

func (s *activateSignatureRequestStep) Name() string { return StepActivateSignatureRequest }

func (s *activateSignatureRequestStep) Execute(ctx context.Context, state *itemState) error {
	result, err := s.adapter.ActivateSignatureRequest(ctx, state.sandbox, state.signatureRequestID)
	if err != nil {
		return err
	}
	state.result = result

	logger.FromContext(ctx).Debug().
		Int("item_index", state.index).
		Str("signature_request_id", state.signatureRequestID).
		Msg("signature request activated")
	return nil
}
