package contract

import "errors"

var (
	ErrContractNotFound   = errors.New("Contrato no encontrado")
	ErrNoContracts        = errors.New("No hay contratos registrados")
	ErrContractorNotFound = errors.New("El contratista indicado no existe")
)
