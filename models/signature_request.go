package models

import "encoding/json"

// Fixed settings of every signature request created by the node.
const (
	DeliveryModeEmail = "email"
	TimezoneParis     = "Europe/Paris"
)

// SignatureRequestBody is the JSON body of the create signature request call.
type SignatureRequestBody struct {
	Name         string   `json:"name"`
	DeliveryMode string   `json:"delivery_mode"`
	Timezone     string   `json:"timezone"`
	Documents    []string `json:"documents"`
	Signers      []Signer `json:"signers"`
}

// IDResponse is the part of an API response the node relies on: the
// identifier of the created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// ActivationResult is the response body of the activate call, passed through
// to the caller without interpretation.
type ActivationResult = json.RawMessage
