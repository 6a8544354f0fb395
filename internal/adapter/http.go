package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/credentials"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/utils"
	"github.com/MKhiriev/yousign-node/models"
)

const (
	pathDocuments         = "documents"
	pathSignatureRequests = "signature_requests"
)

type httpYousignAdapter struct {
	client *utils.HTTPClient
	creds  credentials.Provider

	sandboxURL    string
	productionURL string

	logger *logger.Logger
}

// NewHTTPYousignAdapter constructs the HTTP implementation of
// [YousignAdapter]. Both base URLs from cfg are validated and normalised; the
// client is configured with cfg.RequestTimeout and no retries.
//
// Returns an error if a base URL is empty or lacks a scheme or host.
func NewHTTPYousignAdapter(cfg config.Yousign, creds credentials.Provider, log *logger.Logger) (YousignAdapter, error) {
	if creds == nil {
		return nil, fmt.Errorf("yousign adapter: nil credentials provider")
	}
	if log == nil {
		log = logger.Nop()
	}

	sandboxURL, err := normalizeBaseURL(cfg.SandboxURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sandbox url: %w", err)
	}
	productionURL, err := normalizeBaseURL(cfg.ProductionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid production url: %w", err)
	}

	return &httpYousignAdapter{
		client:        utils.NewHTTPClient(cfg.RequestTimeout, log),
		creds:         creds,
		sandboxURL:    sandboxURL,
		productionURL: productionURL,
		logger:        log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// endpoint joins the environment base URL and path with exactly one slash.
func (h *httpYousignAdapter) endpoint(sandbox bool, path string) string {
	base := h.productionURL
	if sandbox {
		base = h.sandboxURL
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// Call implements [YousignAdapter].
func (h *httpYousignAdapter) Call(ctx context.Context, sandbox bool, method, path string, body CallBody) (json.RawMessage, error) {
	target := h.endpoint(sandbox, path)

	if body.JSON != nil && body.Multipart != nil {
		return nil, transportError(method, target, ErrInvalidCallBody)
	}

	req := h.client.R().SetContext(ctx)

	if err := h.creds.Authenticate(ctx, req); err != nil {
		return nil, transportError(method, target, err)
	}

	switch {
	case body.Multipart != nil:
		doc := body.Multipart
		content := doc.Content
		if content == nil {
			content = bytes.NewReader(nil)
		}
		req.SetMultipartField("file", doc.FileName, doc.MimeType, content).
			SetMultipartFormData(doc.FormData())
	case body.JSON != nil:
		req.SetHeader("Content-Type", "application/json").
			SetBody(body.JSON)
	}

	started := time.Now()
	resp, err := req.Execute(method, target)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("method", method).
			Str("url", target).
			Msg("yousign call failed")
		return nil, transportError(method, target, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("yousign call done")

	if err = mapHTTPError(method, target, resp); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, &APICallError{
			Node:       NodeName,
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode(),
			Body:       string(raw),
			Err:        fmt.Errorf("%w: not json", ErrUnexpectedResponse),
		}
	}

	return json.RawMessage(raw), nil
}

// UploadDocument implements [YousignAdapter].
func (h *httpYousignAdapter) UploadDocument(ctx context.Context, sandbox bool, doc *models.DocumentUpload) (string, error) {
	raw, err := h.Call(ctx, sandbox, http.MethodPost, pathDocuments, CallBody{Multipart: doc})
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}

	id, err := h.extractID(sandbox, http.MethodPost, pathDocuments, raw)
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}

	return id, nil
}

// CreateSignatureRequest implements [YousignAdapter].
func (h *httpYousignAdapter) CreateSignatureRequest(ctx context.Context, sandbox bool, body models.SignatureRequestBody) (string, error) {
	raw, err := h.Call(ctx, sandbox, http.MethodPost, pathSignatureRequests, CallBody{JSON: body})
	if err != nil {
		return "", fmt.Errorf("create signature request: %w", err)
	}

	id, err := h.extractID(sandbox, http.MethodPost, pathSignatureRequests, raw)
	if err != nil {
		return "", fmt.Errorf("create signature request: %w", err)
	}

	return id, nil
}

// ActivateSignatureRequest implements [YousignAdapter].
func (h *httpYousignAdapter) ActivateSignatureRequest(ctx context.Context, sandbox bool, id string) (models.ActivationResult, error) {
	path := pathSignatureRequests + "/" + url.PathEscape(id) + "/activate"

	raw, err := h.Call(ctx, sandbox, http.MethodPost, path, CallBody{})
	if err != nil {
		return nil, fmt.Errorf("activate signature request: %w", err)
	}

	return raw, nil
}

func (h *httpYousignAdapter) extractID(sandbox bool, method, path string, raw json.RawMessage) (string, error) {
	var resp models.IDResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.ID == "" {
		return "", &APICallError{
			Node:   NodeName,
			Method: method,
			URL:    h.endpoint(sandbox, path),
			Body:   string(raw),
			Err:    fmt.Errorf("%w: missing id", ErrUnexpectedResponse),
		}
	}

	return resp.ID, nil
}
