package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/store"
	"github.com/MKhiriev/yousign-node/models"
)

type executionService struct {
	journal store.JournalRepository

	logger *logger.Logger
}

func NewExecutionService(journal store.JournalRepository, logger *logger.Logger) ExecutionService {
	return &executionService{
		journal: journal,
		logger:  logger,
	}
}

func (e *executionService) GetRun(ctx context.Context, runID string) ([]models.ExecutionRecord, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, ErrEmptyRunID
	}
	return e.journal.ListByRun(ctx, runID)
}

func (e *executionService) GetOrphanedDocuments(ctx context.Context) ([]models.ExecutionRecord, error) {
	return e.journal.ListOrphanedDocuments(ctx)
}
