package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/yousign-node/models"
)

// readManifest decodes the manifest at path on top of defaults. "-" reads
// standard input.
func readManifest(path string, defaults models.Parameters) (models.ExecutionManifest, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return models.ExecutionManifest{}, fmt.Errorf("error opening manifest: %w", err)
		}
		defer f.Close()
		r = f
	}

	return decodeManifest(r, defaults)
}

func decodeManifest(r io.Reader, defaults models.Parameters) (models.ExecutionManifest, error) {
	manifest := models.ExecutionManifest{Parameters: defaults}

	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return models.ExecutionManifest{}, fmt.Errorf("error decoding manifest: %w", err)
	}

	return manifest, nil
}

func writeResponse(w io.Writer, response models.ExecutionResponse) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}
