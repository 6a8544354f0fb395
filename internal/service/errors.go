package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingBinaryData          = errors.New("no binary data exists on item")
	ErrMissingNamedBinaryProperty = errors.New("binary data property does not exist on item")
	ErrBinaryDataUnavailable      = errors.New("binary data could not be loaded")
	ErrInvalidParameters          = errors.New("invalid parameters")

	ErrEmptyRunID = errors.New("empty run id")
)

// Pipeline step names reported in [ItemError.Step].
const (
	StepResolveDocument          = "resolve document"
	StepUploadDocument           = "upload document"
	StepCreateSignatureRequest   = "create signature request"
	StepActivateSignatureRequest = "activate signature request"
)

// ItemError reports the failure of a single item. Err is either one of the
// input sentinels of this package or the error returned by the API adapter.
type ItemError struct {
	Index        int
	Step         string
	PropertyName string
	Err          error
}

func (e *ItemError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "item %d", e.Index)
	if e.Step != "" {
		fmt.Fprintf(&b, " (%s)", e.Step)
	}
	b.WriteString(": ")

	if errors.Is(e.Err, ErrMissingNamedBinaryProperty) {
		fmt.Fprintf(&b, "binary data property %q does not exist on item", e.PropertyName)
		return b.String()
	}

	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by the item or the parameters
// rather than by the remote API.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingBinaryData) ||
		errors.Is(err, ErrMissingNamedBinaryProperty) ||
		errors.Is(err, ErrBinaryDataUnavailable) ||
		errors.Is(err, ErrInvalidParameters)
}

// ItemIndex returns the index of the failed item carried by err.
func ItemIndex(err error) (int, bool) {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Index, true
	}
	return 0, false
}
