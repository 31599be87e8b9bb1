package report

import "errors"

var (
	ErrNoCompanies   = errors.New("No hay empresas registradas")
	ErrNoContractors = errors.New("No hay contratistas registrados")
	ErrNoContracts   = errors.New("No hay contratos registrados")
)
