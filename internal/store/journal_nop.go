package store

import (
	"context"

	"github.com/MKhiriev/yousign-node/models"
)

// nopJournal is used when no journal database is configured. Records are
// dropped and reads report [ErrJournalDisabled].
type nopJournal struct{}

func NewNopJournal() JournalRepository {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, models.ExecutionRecord) error {
	return nil
}

func (nopJournal) ListByRun(context.Context, string) ([]models.ExecutionRecord, error) {
	return nil, ErrJournalDisabled
}

func (nopJournal) ListOrphanedDocuments(context.Context) ([]models.ExecutionRecord, error) {
	return nil, ErrJournalDisabled
}
