package crew

import "errors"

var (
	ErrMemberNotFound   = errors.New("Asignación no encontrada")
	ErrTaskNotFound     = errors.New("Asignación no encontrada")
	ErrDateRequired     = errors.New("Debe proporcionar la fecha (?fecha=YYYY-MM-DD)")
	ErrInvalidReference = errors.New("La cuadrilla, pulsera o trabajo indicado no existe")
)
