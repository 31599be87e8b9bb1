package quarter

import "errors"

var (
	ErrQuarterNotFound = errors.New("Cuartel no encontrado")
	ErrNoQuarters      = errors.New("No se encontraron cuarteles con esos filtros")
	ErrCompanyNotFound = errors.New("La empresa indicada no existe")
	ErrNegativeFruit   = errors.New("cantidad_fruta no puede ser negativa")
)
