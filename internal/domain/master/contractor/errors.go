package contractor

import "errors"

var (
	ErrContractorNotFound = errors.New("Contratista no encontrado")
	ErrNoContractors      = errors.New("No hay contratistas registrados")
	ErrInvalidReference   = errors.New("La empresa o el usuario indicado no existe")
)
