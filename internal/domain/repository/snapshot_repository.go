package repository

import "github.com/jhoicas/farmastock/internal/domain/entity"

// SnapshotRepository define el puerto del slot durable que guarda el
// inventario completo serializado (un solo registro: tienda -> productos).
// Load devuelve found=false si el slot no existe todavía.
type SnapshotRepository interface {
	Load() (state map[string][]entity.Product, found bool, err error)
	Save(state map[string][]entity.Product) error
	Close() error
}
