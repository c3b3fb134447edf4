package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // driver sqlite puro Go

	"github.com/jhoicas/farmastock/internal/domain/entity"
	"github.com/jhoicas/farmastock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

// slotKey clave del slot durable. Se conserva el nombre que usaba el
// frontend original en localStorage para poder importar estados previos.
const slotKey = "vaccine_inventory"

// SnapshotStore slot durable sobre SQLite: una tabla de un solo registro con
// el inventario completo serializado como JSON. Backend por defecto
// (durabilidad local de sesión, sin servidor).
type SnapshotStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSnapshotStore abre (o crea) la base en path y asegura la tabla state.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		path = "farmastock.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		slot TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Load lee y deserializa el slot. found=false si aún no existe.
func (s *SnapshotStore) Load() (map[string][]entity.Product, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE slot = ?`, slotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select state: %w", err)
	}
	var state map[string][]entity.Product
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, false, fmt.Errorf("decode state: %w", err)
	}
	return state, true, nil
}

// Save serializa el inventario completo y sobreescribe el slot.
func (s *SnapshotStore) Save(state map[string][]entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO state(slot, payload) VALUES(?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload`,
		slotKey, payload,
	); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// Close cierra la base.
func (s *SnapshotStore) Close() error { return s.db.Close() }
