package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmastock/internal/application/inventory"
	"github.com/jhoicas/farmastock/internal/domain/entity"
	domaininv "github.com/jhoicas/farmastock/internal/domain/inventory"
)

var (
	queryNow        = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	queryClassifier = domaininv.NewStatusClassifier(0)
)

// Muestra fija: un vencido, un bajo, dos normales.
func itemsDeMuestra() []entity.Product {
	return []entity.Product{
		{ID: "1", Store: "Store A", Name: "Amoxicillin", Category: "Antibiotic", Quantity: 200, Batch: "B1", ExpiryDate: "2020-01-01"},
		{ID: "2", Store: "Store A", Name: "Polio Vaccine", Category: "Viral", Quantity: 10, Batch: "B2", ExpiryDate: "2026-06-01"},
		{ID: "3", Store: "Store B", Name: "Tetanus Vaccine", Category: "Bacterial", Quantity: 150, Batch: "B3", ExpiryDate: "2026-01-01"},
		{ID: "4", Store: "Store B", Name: "MMR Vaccine", Category: "Viral", Quantity: 90, Batch: "B4", ExpiryDate: "2025-08-01"},
	}
}

func buscar(items []entity.Product, q inventory.Query) []entity.Product {
	return inventory.Search(items, q, queryClassifier, queryNow)
}

func ids(items []entity.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch_TextoContraNombreOCategoria(t *testing.T) {
	items := itemsDeMuestra()

	assert.Equal(t, []string{"2", "4"}, ids(buscar(items, inventory.Query{Text: "vIrAl"})),
		"la búsqueda no distingue mayúsculas y cubre la categoría")
	assert.Equal(t, []string{"2"}, ids(buscar(items, inventory.Query{Text: "polio"})))
	assert.Len(t, buscar(items, inventory.Query{}), 4, "texto vacío devuelve todo")
}

func TestSearch_FiltroPorEstado(t *testing.T) {
	items := itemsDeMuestra()

	assert.Equal(t, []string{"1"}, ids(buscar(items, inventory.Query{Status: "expired"})))
	assert.Equal(t, []string{"2"}, ids(buscar(items, inventory.Query{Status: "low"})))
	assert.Equal(t, []string{"3", "4"}, ids(buscar(items, inventory.Query{Status: "normal"})))
	assert.Len(t, buscar(items, inventory.Query{Status: inventory.FilterAll}), 4)
}

func TestSearch_FiltroPorCategoria(t *testing.T) {
	items := itemsDeMuestra()
	assert.Equal(t, []string{"2", "4"}, ids(buscar(items, inventory.Query{Category: "Viral"})))
	assert.Len(t, buscar(items, inventory.Query{Category: inventory.FilterAll}), 4)
}

func TestSearch_Ordenamientos(t *testing.T) {
	items := itemsDeMuestra()

	assert.Equal(t, []string{"1", "4", "2", "3"},
		ids(buscar(items, inventory.Query{SortBy: inventory.SortByName})), "nombre ascendente")
	assert.Equal(t, []string{"1", "3", "4", "2"},
		ids(buscar(items, inventory.Query{SortBy: inventory.SortByQuantity})), "cantidad descendente")
	assert.Equal(t, []string{"1", "4", "3", "2"},
		ids(buscar(items, inventory.Query{SortBy: inventory.SortByExpiry})), "caducidad ascendente")
	assert.Equal(t, []string{"1", "2", "3", "4"},
		ids(buscar(items, inventory.Query{SortBy: inventory.SortByStatus})), "severidad: expired < low < normal")
}

func TestSearch_OrdenPorEstadoEsEstable(t *testing.T) {
	// Tres normales con orden original 3, 4, 5: deben conservarlo.
	items := []entity.Product{
		{ID: "3", Name: "C", Category: "X", Quantity: 100, ExpiryDate: "2026-01-01"},
		{ID: "4", Name: "A", Category: "X", Quantity: 100, ExpiryDate: "2026-01-01"},
		{ID: "5", Name: "B", Category: "X", Quantity: 100, ExpiryDate: "2026-01-01"},
		{ID: "1", Name: "Z", Category: "X", Quantity: 5, ExpiryDate: "2026-01-01"},
	}
	assert.Equal(t, []string{"1", "3", "4", "5"},
		ids(buscar(items, inventory.Query{SortBy: inventory.SortByStatus})))
}

func TestSearch_MonotoniaAlApilarFiltros(t *testing.T) {
	items := itemsDeMuestra()
	conFiltro := buscar(items, inventory.Query{Text: "vaccine", Status: "low", SortBy: inventory.SortByName})
	sinFiltro := buscar(items, inventory.Query{Text: "vaccine", Status: inventory.FilterAll, SortBy: inventory.SortByName})

	assert.Subset(t, ids(sinFiltro), ids(conFiltro),
		"filtrar por estado solo puede reducir el resultado")
}

func TestSearch_NoMutaLaEntrada(t *testing.T) {
	items := itemsDeMuestra()
	original := ids(items)

	_ = buscar(items, inventory.Query{SortBy: inventory.SortByName})
	assert.Equal(t, original, ids(items), "la secuencia de entrada queda intacta")

	a := buscar(items, inventory.Query{Text: "vaccine", SortBy: inventory.SortByExpiry})
	b := buscar(items, inventory.Query{Text: "vaccine", SortBy: inventory.SortByExpiry})
	assert.Equal(t, a, b, "mismos argumentos, misma salida")
}

func TestCategories_EnOrdenDePrimeraAparicion(t *testing.T) {
	cats := inventory.Categories(itemsDeMuestra())
	assert.Equal(t, []string{"Antibiotic", "Viral", "Bacterial"}, cats)
}

func TestSummarize_AgregadosDelTablero(t *testing.T) {
	inv := entity.NewInventory([]string{"Store A", "Store B"})
	for _, p := range itemsDeMuestra() {
		inv.Items[p.Store] = append(inv.Items[p.Store], p)
	}

	s := inventory.Summarize(inv, queryClassifier, queryNow)
	assert.Equal(t, 4, s.TotalProducts)
	assert.Equal(t, 450, s.TotalUnits)
	assert.Equal(t, 1, s.Expired)
	assert.Equal(t, 1, s.Low)
	assert.Equal(t, 2, s.Normal)

	require.Len(t, s.Stores, 2)
	assert.Equal(t, inventory.StoreStat{Store: "Store A", Products: 2, Units: 210}, s.Stores[0])
	assert.Equal(t, inventory.StoreStat{Store: "Store B", Products: 2, Units: 240}, s.Stores[1])
}
