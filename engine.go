// Package farmastock expone el motor de inventario de vacunas: la fuente
// única de verdad de los registros por tienda, su API de mutación y
// consulta, la clasificación derivada de estado y la persistencia durable.
// Es un módulo enlazable: los colaboradores de UI consumen estas operaciones
// directamente, no hay superficie de red ni CLI.
package farmastock

import (
	"context"
	"fmt"

	"github.com/jhoicas/farmastock/internal/application/inventory"
	domaininv "github.com/jhoicas/farmastock/internal/domain/inventory"
	"github.com/jhoicas/farmastock/internal/domain/repository"
	infracsv "github.com/jhoicas/farmastock/internal/infrastructure/csv"
	"github.com/jhoicas/farmastock/internal/infrastructure/memory"
	"github.com/jhoicas/farmastock/internal/infrastructure/postgres"
	"github.com/jhoicas/farmastock/internal/infrastructure/sqlite"
	"github.com/jhoicas/farmastock/pkg/config"
	"github.com/jhoicas/farmastock/pkg/logger"
)

// Engine contenedor del estado de la aplicación: se construye una vez al
// inicio del proceso y se pasa por referencia a los colaboradores.
type Engine struct {
	Inventory  *inventory.UseCase
	Classifier domaininv.StatusClassifier
	Exporter   inventory.ReportExporter

	slot repository.SnapshotRepository
	log  *logger.Logger
}

// Open construye el motor completo: logger, backend del slot durable según
// configuración, carga/migración/siembra del inventario y exportador.
func Open(ctx context.Context, cfg *config.Config) (*Engine, error) {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	slot, err := openSlot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Strs("stores", cfg.Inventory.Stores).
		Msg("iniciando motor de inventario")

	return &Engine{
		Inventory:  inventory.New(cfg.Inventory.Stores, slot, log),
		Classifier: domaininv.NewStatusClassifier(cfg.Inventory.LowStockThreshold),
		Exporter:   infracsv.NewExporter(),
		slot:       slot,
		log:        log,
	}, nil
}

// Close libera el backend durable.
func (e *Engine) Close() error {
	return e.slot.Close()
}

func openSlot(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, error) {
	switch cfg.Storage.Backend {
	case "", "sqlite":
		slot, err := sqlite.NewSnapshotStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("abrir slot sqlite: %w", err)
		}
		return slot, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conectar a PostgreSQL: %w", err)
		}
		slot, err := postgres.NewSnapshotStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("abrir slot postgres: %w", err)
		}
		return slot, nil
	case "memory":
		return memory.NewSnapshotStore(), nil
	default:
		return nil, fmt.Errorf("backend de almacenamiento desconocido: %q", cfg.Storage.Backend)
	}
}
