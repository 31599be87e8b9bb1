package attendance

import (
	"time"
)

// MarkType is one of the four daily bracelet marks, in the order a shift normally produces them.
type MarkType string

const (
	MarkEntry    MarkType = "entrada"
	MarkBreakOut MarkType = "salida_colacion"
	MarkBreakIn  MarkType = "entrada_colacion"
	MarkExit     MarkType = "salida"
)

var markColumns = map[MarkType]string{
	MarkEntry:    "horario_entrada",
	MarkBreakOut: "horario_salida_colacion",
	MarkBreakIn:  "horario_entrada_colacion",
	MarkExit:     "horario_salida",
}

func (m MarkType) IsValid() bool {
	_, ok := markColumns[m]
	return ok
}

// Column returns the asistencias column holding this mark. It is the only
// source of column names interpolated into SQL.
func (m MarkType) Column() string {
	return markColumns[m]
}

// Record is one ledger row: a bracelet's marks for a single work date.
type Record struct {
	ID           int64
	BraceletID   string
	WorkDate     time.Time
	EntryTime    *time.Time
	BreakOutTime *time.Time
	BreakInTime  *time.Time
	ExitTime     *time.Time
}

// Slot returns the timestamp stored for mark m, nil when not yet marked.
func (r Record) Slot(m MarkType) *time.Time {
	switch m {
	case MarkEntry:
		return r.EntryTime
	case MarkBreakOut:
		return r.BreakOutTime
	case MarkBreakIn:
		return r.BreakInTime
	case MarkExit:
		return r.ExitTime
	}
	return nil
}

type MarkStatus string

const (
	MarkCreated MarkStatus = "created"
	MarkUpdated MarkStatus = "updated"
)

// WorkerProfile is what the bracelet directory resolves for attendance.
type WorkerProfile struct {
	WorkerID   int64
	BraceletID string
	Active     bool
	Name       string
	Role       string
	Contact    string
	Address    string
}

// Clock supplies the current time; injected so work dates are testable.
type Clock func() time.Time

// WorkDate truncates t to its calendar date in loc.
func WorkDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
