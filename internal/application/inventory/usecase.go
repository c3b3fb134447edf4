package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/farmastock/internal/domain"
	"github.com/jhoicas/farmastock/internal/domain/entity"
	"github.com/jhoicas/farmastock/internal/domain/repository"
	"github.com/jhoicas/farmastock/pkg/logger"
)

// ProductInput datos de entrada para alta o edición de un registro.
// ID es opcional en el alta: si viene vacío (o ya está en uso) se asigna
// uno nuevo. Store nunca se toma de la entrada: lo estampa el caso de uso.
type ProductInput struct {
	ID          string
	Name        string
	Category    string
	Quantity    int
	Batch       string
	ExpiryDate  string
	Temperature string
}

// Subscriber recibe un snapshot fresco del inventario tras cada mutación observable.
type Subscriber func(entity.Inventory)

// UseCase es el dueño único del agregado Inventory durante la vida del
// proceso: toda mutación pasa por aquí (modelo single-writer). Cada mutación
// produce un estado nuevo (copy-on-write) y dispara un guardado síncrono al
// slot durable; el mutex se mantiene durante el guardado, de modo que un
// Save posterior nunca puede adelantar a uno anterior.
type UseCase struct {
	mu    sync.Mutex
	state entity.Inventory
	slot  repository.SnapshotRepository
	log   *logger.Logger
	subs  []Subscriber
}

// New construye el caso de uso y ejecuta la carga inicial: lee el slot
// durable, migra el esquema antiguo si hace falta y, si el slot está ausente,
// corrupto o completamente vacío, siembra el catálogo por defecto. Los fallos
// de lectura se recuperan localmente (seed) y nunca son fatales.
func New(stores []string, slot repository.SnapshotRepository, log *logger.Logger) *UseCase {
	uc := &UseCase{slot: slot, log: log}
	uc.state = uc.load(stores)
	return uc
}

func (uc *UseCase) load(stores []string) entity.Inventory {
	raw, found, err := uc.slot.Load()
	switch {
	case err != nil:
		// Slot ilegible o corrupto: se recupera con datos semilla.
		uc.log.Warn().Err(err).Msg("estado persistido ilegible, sembrando inventario por defecto")
	case !found:
		uc.log.Info().Msg("slot durable vacío, sembrando inventario por defecto")
	default:
		inv := Migrate(raw, stores)
		if !inv.IsEmpty() {
			return inv
		}
		// Todas las tiendas vacías equivale a ausente (recupera guardados corruptos previos).
		uc.log.Warn().Msg("estado persistido sin registros, sembrando inventario por defecto")
	}

	inv := entity.Inventory{Stores: append([]string(nil), stores...), Items: Seed(stores, time.Now())}
	if err := uc.slot.Save(inv.Items); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo persistir el inventario sembrado")
	}
	return inv
}

// Subscribe registra un suscriptor que será invocado tras cada mutación
// observable con un snapshot fresco. Devuelve la función para desuscribir.
func (uc *UseCase) Subscribe(fn Subscriber) func() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.subs = append(uc.subs, fn)
	idx := len(uc.subs) - 1
	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		uc.subs[idx] = nil
	}
}

// AddProduct valida los campos requeridos, asigna id y tienda, y antepone el
// registro a la secuencia de la tienda (más reciente primero). Devuelve el
// registro almacenado. Si el guardado durable falla, la mutación en memoria
// se mantiene y el error (no fatal) se devuelve junto al registro.
func (uc *UseCase) AddProduct(store string, in ProductInput) (entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.state.HasStore(store) {
		return entity.Product{}, fmt.Errorf("%w: %q", domain.ErrUnknownStore, store)
	}

	p := entity.Product{
		ID:          in.ID,
		Store:       store,
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Batch:       in.Batch,
		ExpiryDate:  in.ExpiryDate,
		Temperature: in.Temperature,
	}
	if missing := p.Validate(); len(missing) > 0 {
		return entity.Product{}, &domain.ValidationError{Fields: missing}
	}
	// Unicidad de id en todo el inventario: vacío o en uso -> id nuevo.
	if p.ID == "" || uc.state.ContainsID(p.ID) {
		p.ID = uuid.New().String()
	}

	next := uc.state.Clone()
	next.Items[store] = append([]entity.Product{p}, next.Items[store]...)
	return p, uc.commit(next)
}

// UpdateProduct reemplaza todos los campos editables del registro preservando
// ID, Store y su posición en la secuencia (reemplazo in situ, no borrar y
// reinsertar). Devuelve NotFoundError si el id no existe en esa tienda.
func (uc *UseCase) UpdateProduct(store, id string, in ProductInput) (entity.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := -1
	for i, p := range uc.state.Items[store] {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.Product{}, &domain.NotFoundError{Store: store, ID: id}
	}

	p := entity.Product{
		ID:          id,    // se preserva aunque la entrada lo omita o altere
		Store:       store, // ídem
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Batch:       in.Batch,
		ExpiryDate:  in.ExpiryDate,
		Temperature: in.Temperature,
	}
	if missing := p.Validate(); len(missing) > 0 {
		return entity.Product{}, &domain.ValidationError{Fields: missing}
	}

	next := uc.state.Clone()
	next.Items[store][idx] = p
	return p, uc.commit(next)
}

// DeleteProduct elimina el registro. Si el id no existe es un no-op (no un
// error): el llamador puede estar repitiendo un click de borrado.
func (uc *UseCase) DeleteProduct(store, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := uc.state.Items[store]
	idx := -1
	for i, p := range items {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := uc.state.Clone()
	next.Items[store] = append(next.Items[store][:idx], next.Items[store][idx+1:]...)
	return uc.commit(next)
}

// ListByStore devuelve los registros actuales de una tienda en orden de
// inserción (más reciente primero). Siempre es una copia: el estado interno
// nunca se expone. Tienda desconocida devuelve secuencia vacía.
func (uc *UseCase) ListByStore(store string) []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]entity.Product{}, uc.state.Items[store]...)
}

// ListAll devuelve la vista aplanada de todas las tiendas: orden de la
// enumeración de tiendas y, dentro de cada una, orden de inserción.
func (uc *UseCase) ListAll() []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Flatten()
}

// Snapshot devuelve una copia profunda del agregado completo.
func (uc *UseCase) Snapshot() entity.Inventory {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Clone()
}

// Stores devuelve la enumeración de tiendas configurada.
func (uc *UseCase) Stores() []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]string(nil), uc.state.Stores...)
}

// commit publica el estado nuevo, lo guarda en el slot durable y notifica a
// los suscriptores. Un fallo de guardado no revierte la mutación: la memoria
// sigue siendo autoritativa hasta el próximo Save exitoso.
func (uc *UseCase) commit(next entity.Inventory) error {
	uc.state = next

	var saveErr error
	if err := uc.slot.Save(uc.state.Items); err != nil {
		uc.log.Warn().Err(err).Msg("guardado durable fallido, el estado en memoria se conserva")
		saveErr = fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err)
	}

	for _, fn := range uc.subs {
		if fn != nil {
			fn(uc.state.Clone())
		}
	}
	return saveErr
}
