package models

import "encoding/json"

// ItemResultResponse is the wire form of an [ItemResult]: the error is
// rendered as text so results can be printed or sent over HTTP.
type ItemResultResponse struct {
	Index  int             `json:"index"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ExecutionResponse is returned for a whole run. Error is set when the run
// stopped before the last item.
type ExecutionResponse struct {
	RunID   string               `json:"run_id,omitempty"`
	Results []ItemResultResponse `json:"results"`
	Error   string               `json:"error,omitempty"`
}

// NewItemResultResponses converts results keeping their order.
func NewItemResultResponses(results []ItemResult) []ItemResultResponse {
	out := make([]ItemResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, newItemResultResponse(r))
	}
	return out
}

func newItemResultResponse(r ItemResult) ItemResultResponse {
	resp := ItemResultResponse{Index: r.Index, Result: r.Result}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}

// MarshalJSON renders r in its wire form.
func (r ItemResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(newItemResultResponse(r))
}

// NewExecutionResponse builds the response of a run that may have stopped
// with runErr.
func NewExecutionResponse(runID string, results []ItemResult, runErr error) ExecutionResponse {
	resp := ExecutionResponse{
		RunID:   runID,
		Results: NewItemResultResponses(results),
	}
	if runErr != nil {
		resp.Error = runErr.Error()
	}
	return resp
}
