package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/yousign-node/internal/adapter"
	"github.com/MKhiriev/yousign-node/internal/service"
	"github.com/MKhiriev/yousign-node/internal/store"
	"github.com/MKhiriev/yousign-node/internal/utils"
)

// errorStatuses is matched in order; the first target found in the error
// chain decides the status.
var errorStatuses = []struct {
	target error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{ErrInvalidParametersField, http.StatusBadRequest},
	{ErrInvalidItemField, http.StatusBadRequest},
	{ErrInvalidManifest, http.StatusBadRequest},
	{ErrInvalidMultipartForm, http.StatusBadRequest},

	{service.ErrMissingBinaryData, http.StatusBadRequest},
	{service.ErrMissingNamedBinaryProperty, http.StatusBadRequest},
	{service.ErrBinaryDataUnavailable, http.StatusBadRequest},
	{service.ErrInvalidParameters, http.StatusBadRequest},
	{service.ErrEmptyRunID, http.StatusBadRequest},

	{store.ErrJournalDisabled, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	// Remote failures first: an API call error may wrap a deadline.
	if adapter.IsAPICallError(err) {
		return http.StatusBadGateway
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status matching err. Internal errors
// are not echoed to the caller.
func writeServiceError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
	return status
}
