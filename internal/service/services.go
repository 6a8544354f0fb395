package service

import (
	"github.com/MKhiriev/yousign-node/internal/adapter"
	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/store"
)

type Services struct {
	SignatureRequestService SignatureRequestService
	ExecutionService        ExecutionService
}

func NewServices(yousign adapter.YousignAdapter, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	signatureRequests := NewSignatureRequestService(yousign, storages, cfg.Node, logger)
	if cfg.Node.ValidateParameters {
		signatureRequests = NewSignatureRequestValidationService().Wrap(signatureRequests)
	}

	return &Services{
		SignatureRequestService: signatureRequests,
		ExecutionService:        NewExecutionService(storages.JournalRepository, logger),
	}
}
