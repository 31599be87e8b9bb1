package harvest

import "errors"

var (
	ErrProcessNotFound       = errors.New("Proceso no encontrado")
	ErrMissingData           = errors.New("Faltan datos requeridos")
	ErrBraceletUnassigned    = errors.New("Pulsera no asociada a trabajador")
	ErrBraceletInactive      = errors.New("Pulsera inactiva. Registro no permitido.")
	ErrNoWorkerForBracelet   = errors.New("No hay trabajador asociado a esa pulsera")
	ErrDateRequired          = errors.New("La fecha es requerida (formato YYYY-MM-DD)")
	ErrBraceletNotRegistered = errors.New("La pulsera indicada no existe")
)
