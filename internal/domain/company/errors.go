package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("Empresa no encontrada")
	ErrNoCompanies     = errors.New("No hay empresas registradas")
	ErrCompanyInUse    = errors.New("La empresa tiene registros asociados")
)
