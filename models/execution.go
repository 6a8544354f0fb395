package models

import "time"

// ExecutionStatus is the final state of an item as recorded in the journal.
type ExecutionStatus string

const (
	// ExecutionActivated means all three calls succeeded.
	ExecutionActivated ExecutionStatus = "activated"

	// ExecutionRejected means the item failed before any remote call.
	ExecutionRejected ExecutionStatus = "rejected"

	// ExecutionFailed means the first remote call (upload) failed.
	ExecutionFailed ExecutionStatus = "failed"

	// ExecutionDocumentOrphaned means the document was uploaded but the
	// signature request was never activated. The document stays on the
	// remote side.
	ExecutionDocumentOrphaned ExecutionStatus = "document_orphaned"
)

// ExecutionRecord is one journal row describing what happened to an item.
type ExecutionRecord struct {
	ID                 int64           `json:"id"`
	RunID              string          `json:"run_id"`
	ItemIndex          int             `json:"item_index"`
	Sandbox            bool            `json:"sandbox"`
	DocumentID         string          `json:"document_id,omitempty"`
	SignatureRequestID string          `json:"signature_request_id,omitempty"`
	Status             ExecutionStatus `json:"status"`
	Error              string          `json:"error,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ExecutionManifest is the input of a command line run: the parameters and
// the items to process.
type ExecutionManifest struct {
	Parameters Parameters `json:"parameters"`
	Items      []Item     `json:"items"`
}
