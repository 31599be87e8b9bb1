package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Mark errors
	ErrMarkRequired          = errors.New("Pulsera y tipo de marca requeridos")
	ErrInvalidMarkType       = errors.New("Tipo de marca inválido")
	ErrBraceletNotRegistered = errors.New("Pulsera no registrada en el sistema")
	ErrBraceletInactive      = errors.New("Pulsera inactiva. No se puede registrar asistencia.")
	ErrEntryRequired         = errors.New("No se puede registrar esta marca sin haber marcado entrada primero")
	ErrMarkAlreadySet        = errors.New("La marca ya fue registrada hoy")

	// Report errors
	ErrPeriodRequired = errors.New("Debe proporcionar año y mes (ej: ?anio=2025&mes=05)")
	ErrInvalidPeriod  = errors.New("Año o mes inválido (mes debe estar entre 1 y 12)")
	ErrWorkerNotFound = errors.New("Trabajador no encontrado para esta pulsera")
)

// MarkConflictError reports a mark whose slot is already filled for today.
type MarkConflictError struct {
	Mark MarkType
}

func (e *MarkConflictError) Error() string {
	return fmt.Sprintf("Ya existe una marca de tipo '%s' para hoy", e.Mark)
}

func (e *MarkConflictError) Is(target error) bool {
	return target == ErrMarkAlreadySet
}
