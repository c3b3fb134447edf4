package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/farmastock/internal/domain/entity"
)

// Status clasificación derivada de un registro: nunca se persiste, se
// recalcula en cada lectura con el instante que aporta el llamador.
type Status string

const (
	StatusExpired Status = "expired"
	StatusLow     Status = "low"
	StatusNormal  Status = "normal"
)

// Severity orden fijo de severidad para ordenamientos: expired < low < normal.
func (s Status) Severity() int {
	switch s {
	case StatusExpired:
		return 0
	case StatusLow:
		return 1
	default:
		return 2
	}
}

// Label devuelve el estado con inicial mayúscula (columnas de reporte).
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// DefaultLowStockThreshold umbral por defecto de stock bajo, en unidades.
const DefaultLowStockThreshold = 50

// StatusClassifier servicio de dominio puro que clasifica un producto a una
// fecha dada. La caducidad domina sobre el stock bajo: un registro vencido
// con stock alto sigue siendo "expired".
type StatusClassifier struct {
	LowStockThreshold int
}

// NewStatusClassifier construye el clasificador; threshold <= 0 usa el default.
func NewStatusClassifier(threshold int) StatusClassifier {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return StatusClassifier{LowStockThreshold: threshold}
}

// Classify calcula el estado derivado. La comparación de caducidad es solo
// por fecha: vencido si expiryDate es estrictamente anterior a hoy.
func (c StatusClassifier) Classify(p entity.Product, now time.Time) Status {
	if exp, err := p.ExpiryTime(); err == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if exp.Before(today) {
			return StatusExpired
		}
	}
	if p.Quantity < c.LowStockThreshold {
		return StatusLow
	}
	return StatusNormal
}
