package assignment

import "time"

type Status string

const (
	StatusActive   Status = "activo"
	StatusInactive Status = "inactivo"
	StatusEnded    Status = "finalizado"
)

// Assignment links a worker to a contract for a period.
type Assignment struct {
	ID         int64
	ContractID int64
	WorkerID   int64
	StartsOn   time.Time
	EndsOn     *time.Time
	Status     Status
	WorkerName *string
	Document   *string
}

type Filter struct {
	ContractID *int64
	WorkerID   *int64
}
