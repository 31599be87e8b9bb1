package crew

import (
	"strings"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MemberResponse struct {
	ID          int64           `json:"id"`
	CrewID      int64           `json:"cuadrilla_id"`
	BraceletID  string          `json:"pulsera_uuid"`
	FruitAmount decimal.Decimal `json:"cantidad_fruta"`
	WorkerName  *string         `json:"trabajador_nombre,omitempty"`
	CrewName    *string         `json:"cuadrilla_nombre,omitempty"`
}

func NewMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		CrewID:      m.CrewID,
		BraceletID:  m.BraceletID,
		FruitAmount: m.FruitAmount,
		WorkerName:  m.WorkerName,
		CrewName:    m.CrewName,
	}
}

type CreateMemberRequest struct {
	CrewID      int64            `json:"cuadrilla_id"`
	BraceletID  string           `json:"pulsera_uuid"`
	FruitAmount *decimal.Decimal `json:"cantidad_fruta,omitempty"`
}

func (r *CreateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	r.BraceletID = strings.TrimSpace(r.BraceletID)
	if r.CrewID <= 0 || r.BraceletID == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "cuadrilla_id",
			Message: "cuadrilla_id y pulsera_uuid son obligatorios",
		})
	}
	if r.FruitAmount != nil && r.FruitAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "cantidad_fruta",
			Message: "cantidad_fruta no puede ser negativa",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r CreateMemberRequest) ToEntity() Member {
	m := Member{CrewID: r.CrewID, BraceletID: r.BraceletID, FruitAmount: decimal.Zero}
	if r.FruitAmount != nil {
		m.FruitAmount = *r.FruitAmount
	}
	return m
}

type UpdateMemberRequest struct {
	ID int64 `json:"-"`
	CreateMemberRequest
}

type TaskResponse struct {
	ID       int64   `json:"id"`
	CrewID   int64   `json:"cuadrilla_id"`
	WorkID   int64   `json:"trabajo_id"`
	Date     string  `json:"fecha"`
	WorkName *string `json:"nombre,omitempty"`
	WorkType *string `json:"tipo,omitempty"`
}

func NewTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:       t.ID,
		CrewID:   t.CrewID,
		WorkID:   t.WorkID,
		Date:     t.Date.Format(time.DateOnly),
		WorkName: t.WorkName,
		WorkType: t.WorkType,
	}
}

type CreateTaskRequest struct {
	CrewID int64  `json:"cuadrilla_id" validate:"required,gt=0"`
	WorkID int64  `json:"trabajo_id" validate:"required,gt=0"`
	Date   string `json:"fecha" validate:"required,datetime=2006-01-02"`
}

func (r *CreateTaskRequest) Validate() error {
	const msg = "Todos los campos son obligatorios"
	return validator.Struct(r, map[string]string{
		"cuadrilla_id": msg,
		"trabajo_id":   msg,
	})
}

func (r CreateTaskRequest) ToEntity() Task {
	date, _ := validator.IsValidDate(r.Date)
	return Task{CrewID: r.CrewID, WorkID: r.WorkID, Date: date}
}

type UpdateTaskRequest struct {
	ID int64 `json:"-"`
	CreateTaskRequest
}

type SummaryRequest struct {
	CrewID int64
	Date   string
}

func (r SummaryRequest) Validate() (time.Time, error) {
	if validator.IsEmpty(r.Date) {
		return time.Time{}, ErrDateRequired
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return time.Time{}, ErrDateRequired
	}
	return date, nil
}

type WorkResponse struct {
	ID    int64            `json:"id"`
	Name  string           `json:"nombre"`
	Type  *string          `json:"tipo"`
	Value *decimal.Decimal `json:"valor"`
}

type WorkerResponse struct {
	MemberID    int64           `json:"relacion_id"`
	WorkerID    int64           `json:"trabajador_id"`
	Names       string          `json:"nombres"`
	Role        string          `json:"rol"`
	BraceletID  string          `json:"pulsera_uuid"`
	FruitAmount decimal.Decimal `json:"cantidad_fruta"`
}

type SummaryTotals struct {
	TotalWorkers int    `json:"total_trabajadores"`
	TotalFruit   string `json:"total_fruta"`
}

type SummaryResponse struct {
	CrewID  int64            `json:"cuadrilla_id"`
	Date    string           `json:"fecha"`
	Works   []WorkResponse   `json:"trabajos"`
	Workers []WorkerResponse `json:"trabajadores"`
	Totals  SummaryTotals    `json:"resumen"`
}

func NewSummaryResponse(s Summary) SummaryResponse {
	res := SummaryResponse{
		CrewID:  s.CrewID,
		Date:    s.Date.Format(time.DateOnly),
		Works:   make([]WorkResponse, 0, len(s.Works)),
		Workers: make([]WorkerResponse, 0, len(s.Workers)),
		Totals: SummaryTotals{
			TotalWorkers: len(s.Workers),
			TotalFruit:   s.TotalFruit().StringFixed(2),
		},
	}
	for _, w := range s.Works {
		res.Works = append(res.Works, WorkResponse(w))
	}
	for _, w := range s.Workers {
		res.Workers = append(res.Workers, WorkerResponse(w))
	}
	return res
}
