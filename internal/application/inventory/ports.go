package inventory

import (
	"time"

	"github.com/jhoicas/farmastock/internal/domain/entity"
	domaininv "github.com/jhoicas/farmastock/internal/domain/inventory"
)

// StatusFn resuelve el estado derivado de un registro (el llamador fija el instante).
type StatusFn func(entity.Product) domaininv.Status

// ReportExporter puerto para renderizar un snapshot del inventario como
// reporte descargable. includeStore agrega la columna Store (exportación de
// inventario completo); el llamador decide el alcance.
type ReportExporter interface {
	Export(items []entity.Product, includeStore bool, status StatusFn) (string, error)
	Filename(scope string, now time.Time) string
}
