package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrSettlementNotFound  = errors.New("Liquidación no encontrada")
	ErrContractInfoMissing = errors.New("No se encontró información del contrato del trabajador")
	ErrWorkerIDRequired    = errors.New("Debe enviar el parámetro trabajador_id")
	ErrAssignmentNotFound  = errors.New("La asignación de contrato indicada no existe")
	ErrNoSettlements       = errors.New("No hay liquidaciones registradas")
)

// NoSettlementsError reports a worker export with nothing to print.
type NoSettlementsError struct {
	WorkerID int64
	From     string
	To       string
}

func (e *NoSettlementsError) Error() string {
	from, to := e.From, e.To
	if from == "" {
		from = "inicio"
	}
	if to == "" {
		to = "hoy"
	}
	return fmt.Sprintf("No hay liquidaciones registradas para el trabajador ID %d entre %s y %s", e.WorkerID, from, to)
}

func (e *NoSettlementsError) Is(target error) bool {
	return target == ErrNoSettlements
}
