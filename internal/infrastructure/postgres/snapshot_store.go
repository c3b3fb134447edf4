package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/farmastock/internal/domain/entity"
	"github.com/jhoicas/farmastock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

const slotKey = "vaccine_inventory"

// SnapshotStore slot durable sobre PostgreSQL: misma semántica que el backend
// SQLite (un registro, inventario completo como JSONB) para instalaciones que
// ya operan una base central. Sigue siendo un único escritor: no hay merge de
// escritores concurrentes.
type SnapshotStore struct {
	pool *pgxpool.Pool
}

// NewSnapshotStore asegura la tabla del slot y devuelve el adaptador.
func NewSnapshotStore(ctx context.Context, pool *pgxpool.Pool) (*SnapshotStore, error) {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS inventory_state (
		slot TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create inventory_state table: %w", err)
	}
	return &SnapshotStore{pool: pool}, nil
}

// Load lee y deserializa el slot. found=false si aún no existe.
func (s *SnapshotStore) Load() (map[string][]entity.Product, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT payload FROM inventory_state WHERE slot = $1`, slotKey).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select inventory_state: %w", err)
	}
	var state map[string][]entity.Product
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, false, fmt.Errorf("decode state: %w", err)
	}
	return state, true, nil
}

// Save serializa el inventario completo y sobreescribe el slot.
func (s *SnapshotStore) Save(state map[string][]entity.Product) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if _, err := s.pool.Exec(context.Background(),
		`INSERT INTO inventory_state(slot, payload) VALUES($1, $2)
		 ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload`,
		slotKey, payload,
	); err != nil {
		return fmt.Errorf("upsert inventory_state: %w", err)
	}
	return nil
}

// Close cierra el pool de conexiones.
func (s *SnapshotStore) Close() error {
	s.pool.Close()
	return nil
}
