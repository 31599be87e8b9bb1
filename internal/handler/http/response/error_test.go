package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/faena-labs/faena-backend-go/internal/domain/attendance"
	"github.com/faena-labs/faena-backend-go/internal/domain/company"
	"github.com/faena-labs/faena-backend-go/internal/domain/harvest"
	"github.com/faena-labs/faena-backend-go/internal/domain/payroll"
	"github.com/faena-labs/faena-backend-go/internal/domain/user"
	"github.com/faena-labs/faena-backend-go/internal/domain/worker"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", validator.ValidationErrors{{Field: "correo", Message: "correo es obligatorio"}}, http.StatusBadRequest, "correo es obligatorio"},
		{"wrapped not found", fmt.Errorf("lookup: %w", company.ErrCompanyNotFound), http.StatusNotFound, "Empresa no encontrada"},
		{"inactive bracelet", worker.ErrBraceletInactive, http.StatusForbidden, worker.ErrBraceletInactive.Error()},
		{"harvest inactive", harvest.ErrBraceletInactive, http.StatusForbidden, harvest.ErrBraceletInactive.Error()},
		{"mark conflict", &attendance.MarkConflictError{Mark: attendance.MarkExit}, http.StatusConflict, "Ya existe una marca de tipo 'salida' para hoy"},
		{"bare mark conflict", attendance.ErrMarkAlreadySet, http.StatusConflict, "La marca ya fue registrada hoy"},
		{"duplicate email", user.ErrUserEmailExists, http.StatusConflict, "El correo ya está registrado"},
		{"worker export", &payroll.NoSettlementsError{WorkerID: 2}, http.StatusNotFound, "No hay liquidaciones registradas para el trabajador ID 2 entre inicio y hoy"},
		{"permissions", user.ErrInsufficientPermissions, http.StatusForbidden, user.ErrInsufficientPermissions.Error()},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Error interno del servidor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "reporte_asistencia_2025-05_José.pdf", "application/pdf", []byte("%PDF"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment;")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "filename*=utf-8''")
}
