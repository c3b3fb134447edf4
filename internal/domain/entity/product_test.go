package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmastock/internal/domain/entity"
)

func TestValidate_CamposRequeridos(t *testing.T) {
	p := entity.Product{Quantity: -1}
	missing := p.Validate()
	assert.ElementsMatch(t, []string{"name", "category", "quantity", "expiryDate"}, missing)

	// Batch y temperature son opcionales.
	ok := entity.Product{Name: "Hepatitis B", Category: "Viral", Quantity: 0, ExpiryDate: "2026-03-01"}
	assert.Empty(t, ok.Validate(), "quantity cero es válido y batch/temperature pueden faltar")
}

func TestValidate_FechaInvalida(t *testing.T) {
	p := entity.Product{Name: "X", Category: "Y", Quantity: 1, ExpiryDate: "01/03/2026"}
	assert.Equal(t, []string{"expiryDate"}, p.Validate())
}

func TestUnmarshalJSON_IDNumericoDelEsquemaAntiguo(t *testing.T) {
	// El frontend original generaba ids con Date.now(): números JSON.
	raw := `{"id": 1714152287000, "name": "Polio Vaccine", "category": "Viral",
		"quantity": 120, "batch": "BATCH-XYZ123", "expiryDate": "2026-01-15"}`

	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "1714152287000", p.ID)
	assert.Equal(t, "Polio Vaccine", p.Name)
	assert.Equal(t, 120, p.Quantity)
	assert.Empty(t, p.Store, "el esquema antiguo no traía store; lo rellena la migración")
}

func TestInventory_CloneEsCopiaProfunda(t *testing.T) {
	inv := entity.NewInventory([]string{"Store A", "Store B"})
	inv.Items["Store A"] = []entity.Product{{ID: "1", Store: "Store A", Name: "MMR"}}

	snap := inv.Clone()
	inv.Items["Store A"][0].Name = "mutado"
	inv.Items["Store B"] = append(inv.Items["Store B"], entity.Product{ID: "2"})

	assert.Equal(t, "MMR", snap.Items["Store A"][0].Name, "el snapshot no cambia bajo el lector")
	assert.Empty(t, snap.Items["Store B"])
}

func TestInventory_FlattenRespetaElOrden(t *testing.T) {
	inv := entity.NewInventory([]string{"Store B", "Store A"})
	inv.Items["Store A"] = []entity.Product{{ID: "a1"}}
	inv.Items["Store B"] = []entity.Product{{ID: "b1"}, {ID: "b2"}}

	var ids []string
	for _, p := range inv.Flatten() {
		ids = append(ids, p.ID)
	}
	// Orden de la enumeración de tiendas, luego orden de inserción.
	assert.Equal(t, []string{"b1", "b2", "a1"}, ids)
}
