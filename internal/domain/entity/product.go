package entity

import (
	"encoding/json"
	"strconv"
	"time"
)

// DateLayout formato de fecha de caducidad (solo fecha, sin hora).
const DateLayout = "2006-01-02"

// Product representa un lote de producto farmacéutico/vacuna en una tienda.
// Los nombres JSON están fijos por compatibilidad con el estado ya persistido.
// Store está denormalizado: debe coincidir siempre con la tienda bajo la que
// el registro está archivado en el inventario.
type Product struct {
	ID          string `json:"id"`
	Store       string `json:"store"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Batch       string `json:"batch"`
	ExpiryDate  string `json:"expiryDate"`
	Temperature string `json:"temperature,omitempty"`
}

// UnmarshalJSON acepta ids numéricos del esquema antiguo (Date.now() del
// frontend original) además de strings. Un id ausente queda vacío y la
// migración le asigna uno nuevo.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		ID any `json:"id"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.ID.(type) {
	case string:
		p.ID = v
	case float64:
		p.ID = strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		p.ID = v.String()
	}
	return nil
}

// Validate devuelve la lista de campos requeridos faltantes o inválidos.
// Batch y Temperature son opcionales; Quantity debe ser >= 0 y ExpiryDate
// una fecha YYYY-MM-DD parseable.
func (p Product) Validate() []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Category == "" {
		missing = append(missing, "category")
	}
	if p.Quantity < 0 {
		missing = append(missing, "quantity")
	}
	if p.ExpiryDate == "" {
		missing = append(missing, "expiryDate")
	} else if _, err := time.Parse(DateLayout, p.ExpiryDate); err != nil {
		missing = append(missing, "expiryDate")
	}
	return missing
}

// ExpiryTime parsea la fecha de caducidad en UTC (medianoche).
func (p Product) ExpiryTime() (time.Time, error) {
	return time.Parse(DateLayout, p.ExpiryDate)
}
