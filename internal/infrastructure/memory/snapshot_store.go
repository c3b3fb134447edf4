package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/farmastock/internal/domain/entity"
	"github.com/jhoicas/farmastock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

// SnapshotStore slot en memoria para tests y sesiones efímeras. Pasa por el
// mismo ciclo de serialización JSON que los backends durables para que los
// tests de ida y vuelta ejerciten el códec real.
type SnapshotStore struct {
	mu      sync.RWMutex
	payload []byte
	found   bool
}

// NewSnapshotStore construye un slot vacío.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// NewSnapshotStoreWith construye un slot ya poblado con el estado dado.
func NewSnapshotStoreWith(state map[string][]entity.Product) (*SnapshotStore, error) {
	s := &SnapshotStore{}
	if err := s.Save(state); err != nil {
		return nil, err
	}
	return s, nil
}

// Load deserializa el último estado guardado. found=false si nunca se guardó.
func (s *SnapshotStore) Load() (map[string][]entity.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.found {
		return nil, false, nil
	}
	var state map[string][]entity.Product
	if err := json.Unmarshal(s.payload, &state); err != nil {
		return nil, false, fmt.Errorf("decode state: %w", err)
	}
	return state, true, nil
}

// Save serializa y retiene el estado completo.
func (s *SnapshotStore) Save(state map[string][]entity.Product) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
	s.found = true
	return nil
}

// Close no hace nada: no hay recursos que liberar.
func (s *SnapshotStore) Close() error { return nil }
