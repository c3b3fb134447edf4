package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/farmastock/internal/domain/entity"
	domaininv "github.com/jhoicas/farmastock/internal/domain/inventory"
)

// Valores especiales de filtro y claves de ordenamiento.
const (
	FilterAll = "all"

	SortByName     = "name"
	SortByQuantity = "quantity"
	SortByExpiry   = "expiry"
	SortByStatus   = "status"
)

// Query parámetros de búsqueda, filtrado y ordenamiento.
type Query struct {
	Text     string // substring, sin distinguir mayúsculas, contra name O category; vacío = todo
	Status   string // all | expired | low | normal ("" equivale a all)
	Category string // categoría exacta; all o "" = sin filtro
	SortBy   string // name | quantity | expiry | status; "" = orden original
}

// Search aplica búsqueda libre, filtros y ordenamiento sobre items. Es una
// función pura: no muta la secuencia de entrada y los mismos argumentos
// producen siempre la misma salida. El estado derivado se evalúa una sola
// vez contra el instante now para garantizar un snapshot consistente.
func Search(items []entity.Product, q Query, classifier domaininv.StatusClassifier, now time.Time) []entity.Product {
	out := make([]entity.Product, 0, len(items))
	statuses := make(map[string]domaininv.Status, len(items))

	text := strings.ToLower(q.Text)
	for _, p := range items {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Category), text) {
			continue
		}
		st := classifier.Classify(p, now)
		if q.Status != "" && q.Status != FilterAll && string(st) != q.Status {
			continue
		}
		if q.Category != "" && q.Category != FilterAll && p.Category != q.Category {
			continue
		}
		statuses[p.ID] = st
		out = append(out, p)
	}

	// Ordenamiento estable: los empates conservan el orden relativo original.
	switch q.SortBy {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortByQuantity:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	case SortByExpiry:
		sort.SliceStable(out, func(i, j int) bool {
			return expiryKey(out[i]).Before(expiryKey(out[j]))
		})
	case SortByStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return statuses[out[i].ID].Severity() < statuses[out[j].ID].Severity()
		})
	}
	return out
}

// expiryKey devuelve la fecha de caducidad para ordenar; las fechas no
// parseables van al final.
func expiryKey(p entity.Product) time.Time {
	t, err := p.ExpiryTime()
	if err != nil {
		return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// Categories devuelve las categorías distintas presentes en items, en orden
// de primera aparición (opciones del selector de filtro).
func Categories(items []entity.Product) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, p := range items {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// StoreStat resumen por tienda para el tablero.
type StoreStat struct {
	Store    string
	Products int
	Units    int
}

// Summary agregados globales del inventario para el tablero.
type Summary struct {
	TotalProducts int
	TotalUnits    int
	Expired       int
	Low           int
	Normal        int
	Stores        []StoreStat
}

// Summarize calcula los agregados del tablero sobre un snapshot del
// inventario, evaluando el estado derivado contra un único instante.
func Summarize(inv entity.Inventory, classifier domaininv.StatusClassifier, now time.Time) Summary {
	var s Summary
	for _, store := range inv.Stores {
		stat := StoreStat{Store: store}
		for _, p := range inv.Items[store] {
			stat.Products++
			stat.Units += p.Quantity
			switch classifier.Classify(p, now) {
			case domaininv.StatusExpired:
				s.Expired++
			case domaininv.StatusLow:
				s.Low++
			default:
				s.Normal++
			}
		}
		s.TotalProducts += stat.Products
		s.TotalUnits += stat.Units
		s.Stores = append(s.Stores, stat)
	}
	return s
}
