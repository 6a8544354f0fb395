// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/utils"
	"github.com/MKhiriev/yousign-node/models"
)

const (
	runIDHeader = "X-Run-ID"

	parametersField = "parameters"
	itemJSONField   = "json"

	// multipartMemory is the part of a form kept in memory; the rest of the
	// upload is spooled to temporary files.
	multipartMemory = 8 << 20
)

// createSignatureRequest handles a trigger for a single item. Every file part
// of the form becomes a binary property of the item, named after its form
// field.
func (h *Handler) createSignatureRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Err(err).Str("func", "*Handler.createSignatureRequest").Msg("error parsing multipart form")
		writeServiceError(w, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	params, err := h.parseParameters([]byte(r.FormValue(parametersField)))
	if err != nil {
		log.Err(err).Str("func", "*Handler.createSignatureRequest").Msg("error parsing parameters")
		writeServiceError(w, err)
		return
	}

	item, err := itemFromForm(r.MultipartForm)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createSignatureRequest").Msg("error reading item")
		writeServiceError(w, err)
		return
	}

	runID := h.ids.Generate()
	w.Header().Set(runIDHeader, runID)
	ctx := utils.WithRunID(r.Context(), runID)

	result, err := h.services.SignatureRequestService.ProcessItem(ctx, 0, item, params)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Int("status", status).Str("run_id", runID).Msg("signature request failed")
		return
	}

	utils.WriteRawJSON(w, result, http.StatusOK)
}

// execute handles a run request: a JSON manifest whose items carry inline
// base64 data or storage identifiers.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	manifest := models.ExecutionManifest{Parameters: h.defaults}
	if err := json.NewDecoder(r.Body).Decode(&manifest); err != nil {
		log.Err(err).Str("func", "*Handler.execute").Msg("invalid manifest was passed")
		writeServiceError(w, fmt.Errorf("%w: %w", ErrInvalidManifest, err))
		return
	}

	runID := h.ids.Generate()
	w.Header().Set(runIDHeader, runID)
	ctx := utils.WithRunID(r.Context(), runID)

	results, err := h.services.SignatureRequestService.Execute(ctx, manifest.Items, manifest.Parameters)
	status := http.StatusOK
	if err != nil {
		status = statusFromError(err)
		log.Err(err).Int("status", status).Str("run_id", runID).Msg("execution stopped")
	}

	response := models.NewExecutionResponse(runID, results, err)
	if status == http.StatusInternalServerError {
		response.Error = http.StatusText(status)
	}

	if _, err = utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Str("func", "*Handler.execute").Msg("error writing response")
	}
}

// parseParameters overlays the JSON parameters of a request on the
// configured defaults. Fields absent from raw keep their default value.
func (h *Handler) parseParameters(raw []byte) (models.Parameters, error) {
	params := h.defaults
	if len(raw) == 0 {
		return params, nil
	}

	if err := json.Unmarshal(raw, &params); err != nil {
		return models.Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParametersField, err)
	}
	return params, nil
}

func itemFromForm(form *multipart.Form) (models.Item, error) {
	var item models.Item

	if values := form.Value[itemJSONField]; len(values) > 0 && values[0] != "" {
		if err := json.Unmarshal([]byte(values[0]), &item.JSON); err != nil {
			return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidItemField, err)
		}
	}

	for name, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		data, err := readFilePart(headers[0])
		if err != nil {
			return models.Item{}, err
		}
		if item.Binary == nil {
			item.Binary = make(map[string]models.BinaryData, len(form.File))
		}
		item.Binary[name] = data
	}

	return item, nil
}

func readFilePart(header *multipart.FileHeader) (models.BinaryData, error) {
	f, err := header.Open()
	if err != nil {
		return models.BinaryData{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.BinaryData{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	if content == nil {
		content = []byte{}
	}

	return models.BinaryData{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		FileSize: header.Size,
		Data:     content,
	}, nil
}
