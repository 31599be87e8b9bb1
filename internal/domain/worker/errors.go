package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound      = errors.New("Trabajador no encontrado")
	ErrNoWorkerForBracelet = errors.New("No hay trabajador asociado a esta pulsera")
	ErrBraceletInactive    = errors.New("Pulsera inactiva. No se puede registrar actividad.")
	ErrBraceletNotFound    = errors.New("Pulsera no encontrada")
	ErrBraceletExists      = errors.New("La pulsera ya está registrada")
	ErrBraceletInUse       = errors.New("La pulsera ya está asignada a otro trabajador")
)
