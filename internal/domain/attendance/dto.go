package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
)

// ========================================
// MARK DTOs
// ========================================

type RecordMarkRequest struct {
	BraceletID string   `json:"pulsera_uuid"`
	Mark       MarkType `json:"tipo"`
}

func (r *RecordMarkRequest) Validate() error {
	r.BraceletID = strings.TrimSpace(r.BraceletID)
	if validator.IsEmpty(r.BraceletID) || validator.IsEmpty(string(r.Mark)) {
		return ErrMarkRequired
	}
	if !r.Mark.IsValid() {
		return ErrInvalidMarkType
	}
	return nil
}

type MarkResponse struct {
	RecordID   int64      `json:"id"`
	BraceletID string     `json:"pulsera_uuid"`
	Mark       MarkType   `json:"tipo"`
	Status     MarkStatus `json:"estado"`
	WorkDate   string     `json:"fecha"`
	MarkedAt   time.Time  `json:"registrado_en"`
}

// Message is the user facing confirmation for the mark.
func (r MarkResponse) Message() string {
	if r.Status == MarkCreated {
		return "Entrada registrada correctamente"
	}
	return fmt.Sprintf("Marca de '%s' registrada correctamente", r.Mark)
}

// ========================================
// MONTHLY SUMMARY DTOs
// ========================================

type MonthlySummaryRequest struct {
	BraceletID string
	Year       string
	Month      string
}

// Period validates and parses the requested year and month.
func (r MonthlySummaryRequest) Period() (int, time.Month, error) {
	if validator.IsEmpty(r.Year) || validator.IsEmpty(r.Month) {
		return 0, 0, ErrPeriodRequired
	}
	year, err := strconv.Atoi(strings.TrimSpace(r.Year))
	if err != nil || year < 1 {
		return 0, 0, ErrInvalidPeriod
	}
	month, err := strconv.Atoi(strings.TrimSpace(r.Month))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidPeriod
	}
	return year, time.Month(month), nil
}

// MonthlySummary keeps the field names existing report consumers read.
type MonthlySummary struct {
	Month  string         `json:"mes"`
	Worker SummaryWorker  `json:"trabajador"`
	Totals SummaryTotals  `json:"resumen"`
	Days   []DayBreakdown `json:"detalles"`
}

type SummaryWorker struct {
	Name       string `json:"nombres"`
	Role       string `json:"rol"`
	Contact    string `json:"contacto"`
	Address    string `json:"direccion"`
	BraceletID string `json:"pulsera_uuid"`
}

type SummaryTotals struct {
	DaysWorked int    `json:"dias_trabajados"`
	GrossHours string `json:"horas_brutas"`
	BreakHours string `json:"horas_colacion"`
	NetHours   string `json:"horas_trabajadas"`

	GrossMinutes int64 `json:"-"`
	BreakMinutes int64 `json:"-"`
	NetMinutes   int64 `json:"-"`
}

type DayBreakdown struct {
	Date       string     `json:"fecha"`
	Entry      *time.Time `json:"entrada"`
	BreakOut   *time.Time `json:"salida_colacion"`
	BreakIn    *time.Time `json:"entrada_colacion"`
	Exit       *time.Time `json:"salida"`
	GrossHours string     `json:"horas_brutas"`
	BreakHours string     `json:"horas_colacion"`
	NetHours   string     `json:"horas_trabajadas"`

	GrossMinutes int64 `json:"-"`
	BreakMinutes int64 `json:"-"`
	NetMinutes   int64 `json:"-"`
}
