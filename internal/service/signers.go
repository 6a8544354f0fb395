package service

import "github.com/MKhiriev/yousign-node/models"

// MapSigners converts the configured signers into the API payload, keeping
// their order.
func MapSigners(inputs []models.SignerInput) []models.Signer {
	signers := make([]models.Signer, 0, len(inputs))
	for _, in := range inputs {
		signers = append(signers, models.Signer{
			Info: models.SignerInfo{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Email:     in.Email,
				Locale:    models.SignerLocale,
			},
			SignatureLevel:              models.SignatureLevelElectronic,
			SignatureAuthenticationMode: models.SignatureAuthenticationModeNoOTP,
		})
	}
	return signers
}

// BuildSignatureRequestBody assembles the create call body for a single
// uploaded document.
func BuildSignatureRequestBody(name, documentID string, signers []models.Signer) models.SignatureRequestBody {
	return models.SignatureRequestBody{
		Name:         name,
		DeliveryMode: models.DeliveryModeEmail,
		Timezone:     models.TimezoneParis,
		Documents:    []string{documentID},
		Signers:      signers,
	}
}
