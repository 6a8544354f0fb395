package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/yousign-node/models"
)

// MemoryBinaryStorage keeps attachment content in memory. It serves inline
// data and content registered with Save, which is how the HTTP trigger hands
// uploaded files to the orchestrator.
type MemoryBinaryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBinaryStorage() *MemoryBinaryStorage {
	return &MemoryBinaryStorage{blobs: make(map[string][]byte)}
}

// Save stores content under id, replacing any previous content.
func (s *MemoryBinaryStorage) Save(id string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[id] = content
}

// Load implements [BinaryDataStorage].
func (s *MemoryBinaryStorage) Load(_ context.Context, data models.BinaryData) ([]byte, error) {
	if data.Data != nil {
		return data.Data, nil
	}

	s.mu.RLock()
	content, ok := s.blobs[data.ID]
	s.mu.RUnlock()

	if !ok || data.ID == "" {
		return nil, fmt.Errorf("%w: %q", ErrBinaryDataNotFound, data.ID)
	}
	return content, nil
}
