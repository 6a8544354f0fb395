package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/mock"
	"github.com/MKhiriev/yousign-node/internal/store"
	"github.com/MKhiriev/yousign-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExecutionService_GetRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJournal := mock.NewMockJournalRepository(ctrl)
	svc := NewExecutionService(mockJournal, logger.Nop())

	records := []models.ExecutionRecord{{RunID: "run-1", ItemIndex: 0, Status: models.ExecutionActivated}}
	mockJournal.EXPECT().ListByRun(gomock.Any(), "run-1").Return(records, nil)

	got, err := svc.GetRun(context.Background(), " run-1 ")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestExecutionService_GetRun_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewExecutionService(mock.NewMockJournalRepository(ctrl), logger.Nop())

	_, err := svc.GetRun(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyRunID)
}

func TestExecutionService_GetOrphanedDocuments_Disabled(t *testing.T) {
	svc := NewExecutionService(store.NewNopJournal(), logger.Nop())

	_, err := svc.GetOrphanedDocuments(context.Background())
	assert.ErrorIs(t, err, store.ErrJournalDisabled)
}

func TestNewServices_ValidationWrapper(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		BinaryDataStorage: store.NewMemoryBinaryStorage(),
		JournalRepository: store.NewNopJournal(),
	}

	services := NewServices(mock.NewMockYousignAdapter(ctrl), storages, configWithValidation(false), logger.Nop())
	_, ok := services.SignatureRequestService.(*signatureRequestService)
	assert.True(t, ok)
	assert.NotNil(t, services.ExecutionService)

	services = NewServices(mock.NewMockYousignAdapter(ctrl), storages, configWithValidation(true), logger.Nop())
	_, ok = services.SignatureRequestService.(*signatureRequestValidationService)
	assert.True(t, ok)
}

func configWithValidation(validate bool) config.StructuredConfig {
	return config.StructuredConfig{Node: config.Node{ValidateParameters: validate}}
}
