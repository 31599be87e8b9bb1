package worker

import "time"

type BraceletStatus string

const (
	BraceletActive   BraceletStatus = "activa"
	BraceletInactive BraceletStatus = "inactiva"
)

type Worker struct {
	ID         int64
	Names      string
	Address    *string
	Contact    *string
	Role       string
	Rut        *string
	BraceletID *string

	// Joined from pulseras
	BraceletStatus *BraceletStatus
}

type Bracelet struct {
	UUID      string
	Status    BraceletStatus
	CreatedAt time.Time

	// Joined from trabajadores
	WorkerID   *int64
	WorkerName *string
}
