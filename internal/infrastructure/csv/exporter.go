package csv

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/farmastock/internal/application/inventory"
	"github.com/jhoicas/farmastock/internal/domain"
	"github.com/jhoicas/farmastock/internal/domain/entity"
)

var _ inventory.ReportExporter = (*Exporter)(nil)

// emptyTemperature marcador para registros sin condición de almacenamiento.
const emptyTemperature = "N/A"

// Exporter renderiza un snapshot del inventario como texto delimitado por
// comas con todos los campos entre comillas dobles. El formato de columnas
// está fijo por compatibilidad con los reportes que ya circulan:
// Store?, Product Name, Category, Quantity, Batch Number, Expiry Date,
// Storage Temperature, Status.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export genera el reporte: fila de encabezado y una fila por registro en el
// orden recibido (el llamador decide el alcance: una tienda o todas).
// Una secuencia vacía es un error ("nada que exportar"), no un archivo vacío.
func (e *Exporter) Export(items []entity.Product, includeStore bool, status inventory.StatusFn) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrNothingToExport
	}

	header := []string{"Product Name", "Category", "Quantity", "Batch Number", "Expiry Date", "Storage Temperature", "Status"}
	if includeStore {
		header = append([]string{"Store"}, header...)
	}

	var b strings.Builder
	writeRow(&b, header)
	for _, p := range items {
		temp := p.Temperature
		if temp == "" {
			temp = emptyTemperature
		}
		row := []string{
			p.Name,
			p.Category,
			fmt.Sprintf("%d", p.Quantity),
			p.Batch,
			p.ExpiryDate,
			temp,
			status(p).Label(),
		}
		if includeStore {
			row = append([]string{p.Store}, row...)
		}
		writeRow(&b, row)
	}
	return b.String(), nil
}

// Filename devuelve el nombre de archivo convencional:
// <alcance>-inventory-<fecha ISO>.csv (alcance en minúsculas con guiones).
func (e *Exporter) Filename(scope string, now time.Time) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(scope), " ", "-"))
	return fmt.Sprintf("%s-inventory-%s.csv", slug, now.Format(entity.DateLayout))
}

// writeRow escribe una fila con cada campo entre comillas dobles (las
// comillas internas se duplican) y terminada en salto de línea.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
