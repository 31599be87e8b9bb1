package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("Asignación no encontrada")
	ErrNoAssignments      = errors.New("No se encontraron asignaciones")
	ErrInvalidReference   = errors.New("El contrato o el trabajador indicado no existe")
)
