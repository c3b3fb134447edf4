package inventory

import (
	"github.com/google/uuid"
	"github.com/jhoicas/farmastock/internal/domain/entity"
)

// Migrate normaliza un estado deserializado del slot durable contra la
// enumeración de tiendas configurada. Es el paso explícito de actualización
// de esquema que se aplica tras cada carga, antes de cualquier lógica de
// negocio, y es idempotente:
//
//   - registros del esquema antiguo sin campo "store" se rellenan con la
//     clave de la tienda que los contiene;
//   - un "store" desincronizado con su clave se vuelve a estampar;
//   - ids ausentes reciben uno nuevo; ids duplicados entre tiendas conservan
//     la primera aparición y las siguientes reciben uno nuevo;
//   - las claves fuera de la enumeración configurada se descartan.
func Migrate(raw map[string][]entity.Product, stores []string) entity.Inventory {
	inv := entity.NewInventory(stores)
	seen := make(map[string]bool)
	for _, store := range stores {
		items := make([]entity.Product, 0, len(raw[store]))
		for _, p := range raw[store] {
			p.Store = store
			if p.ID == "" || seen[p.ID] {
				p.ID = uuid.New().String()
			}
			seen[p.ID] = true
			items = append(items, p)
		}
		inv.Items[store] = items
	}
	return inv
}
