package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("registro no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnknownStore     = errors.New("tienda desconocida")
	ErrNothingToExport  = errors.New("no hay registros para exportar")
	ErrPersistenceRead  = errors.New("no se pudo leer el estado persistido")
	ErrPersistenceWrite = errors.New("no se pudo guardar el estado")
)

// ValidationError indica campos requeridos faltantes o inválidos en un alta
// o edición. Fields lista los nombres de campo para que la UI pueda señalarlos.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: campos requeridos: %s", ErrInvalidInput, strings.Join(e.Fields, ", "))
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NotFoundError indica que no existe un registro con ese ID en esa tienda.
type NotFoundError struct {
	Store string
	ID    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: id %q en %q", ErrNotFound, e.ID, e.Store)
}

// Unwrap permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
