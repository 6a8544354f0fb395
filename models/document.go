package models

import "io"

// Fixed form values of the document upload call.
const (
	DocumentNatureSignable = "signable_document"
	ParseAnchorsEnabled    = "true"
)

// DocumentUpload describes the multipart body of the upload document call.
// Content is read exactly once while the request is being sent.
type DocumentUpload struct {
	Content      io.Reader
	FileName     string
	MimeType     string
	Nature       string
	ParseAnchors string
}

// NewSignableDocumentUpload builds a [DocumentUpload] with the nature and
// anchor parsing flags used for documents that are going to be signed.
func NewSignableDocumentUpload(content io.Reader, fileName, mimeType string) *DocumentUpload {
	return &DocumentUpload{
		Content:      content,
		FileName:     fileName,
		MimeType:     mimeType,
		Nature:       DocumentNatureSignable,
		ParseAnchors: ParseAnchorsEnabled,
	}
}

// FormData returns the non-file multipart fields of the upload.
func (d *DocumentUpload) FormData() map[string]string {
	return map[string]string{
		"nature":        d.Nature,
		"parse_anchors": d.ParseAnchors,
	}
}
