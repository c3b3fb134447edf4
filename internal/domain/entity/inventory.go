package entity

// Inventory es el agregado raíz: la enumeración fija de tiendas y la
// secuencia ordenada de productos por tienda (más reciente primero).
// El agregado se trata como inmutable: las mutaciones producen una copia
// nueva (copy-on-write) para que los lectores con un snapshot previo
// nunca lo vean cambiar.
type Inventory struct {
	Stores []string
	Items  map[string][]Product
}

// NewInventory construye un agregado vacío para la enumeración de tiendas dada.
func NewInventory(stores []string) Inventory {
	items := make(map[string][]Product, len(stores))
	for _, s := range stores {
		items[s] = []Product{}
	}
	return Inventory{Stores: append([]string(nil), stores...), Items: items}
}

// Clone devuelve una copia profunda del agregado.
func (inv Inventory) Clone() Inventory {
	out := Inventory{
		Stores: append([]string(nil), inv.Stores...),
		Items:  make(map[string][]Product, len(inv.Items)),
	}
	for store, items := range inv.Items {
		out.Items[store] = append([]Product(nil), items...)
	}
	return out
}

// HasStore indica si la tienda pertenece a la enumeración configurada.
func (inv Inventory) HasStore(store string) bool {
	_, ok := inv.Items[store]
	return ok
}

// ContainsID indica si algún registro del inventario completo usa ese id.
func (inv Inventory) ContainsID(id string) bool {
	for _, items := range inv.Items {
		for _, p := range items {
			if p.ID == id {
				return true
			}
		}
	}
	return false
}

// Flatten devuelve todos los registros en orden: enumeración de tiendas y,
// dentro de cada tienda, orden de inserción (más reciente primero).
func (inv Inventory) Flatten() []Product {
	var out []Product
	for _, store := range inv.Stores {
		out = append(out, inv.Items[store]...)
	}
	return out
}

// IsEmpty indica si todas las tiendas están vacías.
func (inv Inventory) IsEmpty() bool {
	for _, items := range inv.Items {
		if len(items) > 0 {
			return false
		}
	}
	return true
}
