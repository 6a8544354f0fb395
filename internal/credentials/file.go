package credentials

import (
	"context"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

// File reads the key from a file on every call.
type File struct {
	path string
}

// NewFile returns a File provider reading the key from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Type implements [Provider].
func (f *File) Type() string {
	return TypeYousignAPI
}

// Authenticate implements [Provider]. The file content is trimmed, so a
// trailing newline left by secret managers is ignored.
func (f *File) Authenticate(ctx context.Context, req *resty.Request) error {
	if err := ctx.Err(); err != nil {
		return wrapErr("file", err)
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return wrapErr("file", err)
	}

	if err = setBearer(req, strings.TrimSpace(string(raw))); err != nil {
		return wrapErr("file", err)
	}
	return nil
}
