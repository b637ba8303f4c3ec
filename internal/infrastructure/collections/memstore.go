package collections

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/tu-usuario/fletes-pro/internal/domain"
	"github.com/tu-usuario/fletes-pro/internal/domain/repository"
)

var _ repository.CollectionStore = (*MemStore)(nil)

type memEntry struct {
	value   json.RawMessage
	version int64
}

// MemStore es un CollectionStore en memoria con la misma semántica de versión
// optimista que el almacén PostgreSQL. Se usa en tests y en desarrollo local
// sin base de datos.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]memEntry
}

// NewMemStore construye el almacén vacío.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]memEntry)}
}

// Get devuelve una copia del documento y su versión; (nil, 0, nil) si no existe.
func (s *MemStore) Get(_ context.Context, key string) (json.RawMessage, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.data[key]
	if !ok {
		return nil, 0, nil
	}
	value := make(json.RawMessage, len(entry.value))
	copy(value, entry.value)
	return value, entry.version, nil
}

// Save reemplaza el documento si la versión presentada coincide con la actual.
func (s *MemStore) Save(_ context.Context, key string, value json.RawMessage, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.data[key]
	current := int64(0)
	if ok {
		current = entry.version
	}
	if version != current {
		return domain.ErrVersionConflict
	}
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.data[key] = memEntry{value: stored, version: current + 1}
	return nil
}
