package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/yousign-node/internal/validators"
	"github.com/MKhiriev/yousign-node/models"
)

type signatureRequestValidationService struct {
	inner     SignatureRequestService
	validator validators.Validator
}

func NewSignatureRequestValidationService() SignatureRequestServiceWrapper {
	return &signatureRequestValidationService{
		validator: validators.NewParametersValidator(),
	}
}

func (v *signatureRequestValidationService) ProcessItem(ctx context.Context, index int, item models.Item, params models.Parameters) (models.ActivationResult, error) {
	if err := v.validate(ctx, params); err != nil {
		return nil, &ItemError{Index: index, Err: err}
	}

	return v.inner.ProcessItem(ctx, index, item, params)
}

// Execute validates the parameters once for the whole run. Invalid parameters
// fail the run before the first item is touched.
func (v *signatureRequestValidationService) Execute(ctx context.Context, items []models.Item, params models.Parameters) ([]models.ItemResult, error) {
	if err := v.validate(ctx, params); err != nil {
		return nil, err
	}

	return v.inner.Execute(ctx, items, params)
}

func (v *signatureRequestValidationService) validate(ctx context.Context, params models.Parameters) error {
	if err := v.validator.Validate(ctx, params); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}
	return nil
}

func (v *signatureRequestValidationService) Wrap(inner SignatureRequestService) SignatureRequestService {
	v.inner = inner
	return v
}
