package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/farmastock/internal/domain/entity"
)

// Catálogo fijo de vacunas para el arranque inicial. El inventario sembrado
// se deriva solo de este catálogo y del instante de siembra: mismo reloj,
// mismo inventario (ids incluidos, generados por SHA-1 sobre un namespace).
var seedCatalog = []struct {
	Name        string
	Category    string
	Temperature string
}{
	{"COVID-19 Vaccine", "Viral", "2-8°C"},
	{"Influenza Vaccine", "Viral", "2-8°C"},
	{"Polio Vaccine", "Viral", "2-8°C"},
	{"MMR Vaccine", "Viral", "-20°C or below"},
	{"Tetanus Vaccine", "Bacterial", "2-8°C"},
	{"Hepatitis B", "Viral", "2-8°C"},
	{"Varicella Vaccine", "Viral", "-20°C or below"},
	{"Yellow Fever", "Viral", "2-8°C"},
	{"Meningococcal", "Bacterial", "15-25°C"},
	{"Pertussis Vaccine", "Bacterial", "2-8°C"},
}

// seedNamespace namespace UUID para ids deterministas de los datos semilla.
var seedNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

const productsPerStore = 7

// Seed genera el inventario por defecto para una primera ejecución: cada
// tienda recibe un surtido del catálogo con cantidades y caducidades
// escalonadas alrededor del instante dado, de modo que la UI arranque con
// una mezcla de registros vencidos, bajos y normales.
func Seed(stores []string, now time.Time) map[string][]entity.Product {
	state := make(map[string][]entity.Product, len(stores))
	for si, store := range stores {
		items := make([]entity.Product, 0, productsPerStore)
		for i := 0; i < productsPerStore; i++ {
			v := seedCatalog[(si*3+i)%len(seedCatalog)]
			// El primer lote de cada tienda ya venció y el segundo está bajo
			// de stock; el resto queda a futuro con cantidades normales.
			offset := 60 + (si*97+i*131)%600
			if i == 0 {
				offset = -30 - si*7
			}
			qty := 60 + (si*37+i*53)%260
			if i == 1 {
				qty = 20 + si*5
			}
			batch := fmt.Sprintf("BATCH-%02d%02d", si+1, i+1)
			items = append(items, entity.Product{
				ID:          uuid.NewSHA1(seedNamespace, []byte(store+"/"+batch)).String(),
				Store:       store,
				Name:        v.Name,
				Category:    v.Category,
				Quantity:    qty,
				Batch:       batch,
				ExpiryDate:  now.AddDate(0, 0, offset).Format(entity.DateLayout),
				Temperature: v.Temperature,
			})
		}
		state[store] = items
	}
	return state
}
