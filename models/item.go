package models

// BinaryData is the metadata of one binary attachment of an [Item]. The
// content is either carried inline in Data or kept by a binary data storage
// under ID.
type BinaryData struct {
	// ID references the content in the binary data storage (file path
	// relative to the storage directory, object key, ...).
	ID string `json:"id,omitempty"`

	// FileName is the original name of the file, sent with the upload.
	FileName string `json:"fileName"`

	// MimeType is the content type of the file, sent with the upload.
	MimeType string `json:"mimeType"`

	// FileSize is informational only.
	FileSize int64 `json:"fileSize,omitempty"`

	// Data is the inline content (base64 in JSON). When set it takes
	// precedence over ID.
	Data []byte `json:"data,omitempty"`
}

// Item is a single workflow input item. Binary maps attachment slot names
// (the binary property name) to the attachment metadata.
type Item struct {
	JSON   map[string]any        `json:"json,omitempty"`
	Binary map[string]BinaryData `json:"binary,omitempty"`
}

// HasBinary reports whether the item carries at least one attachment.
func (i Item) HasBinary() bool {
	return len(i.Binary) > 0
}

// BinaryProperty returns the attachment stored under name.
func (i Item) BinaryProperty(name string) (BinaryData, bool) {
	b, ok := i.Binary[name]
	return b, ok
}

// ItemResult is the outcome of processing one item. Exactly one of Result
// and Err is set. It is not a wire type: it marshals as [ItemResultResponse]
// so a failure is rendered as its message.
type ItemResult struct {
	Index  int
	Result ActivationResult
	Err    error
}

// Failed reports whether the item ended with an error.
func (r ItemResult) Failed() bool {
	return r.Err != nil
}
