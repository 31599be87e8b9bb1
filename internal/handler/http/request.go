package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/faena-labs/faena-backend-go/internal/handler/http/response"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into dst and answers 400 when it is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Debug("decode error", "path", r.URL.Path, "error", err)
		response.BadRequest(w, "Formato de solicitud inválido", nil)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.HandleError(w, validator.ValidationErrors{{Field: "id", Message: "id inválido"}})
		return 0, false
	}
	return id, true
}
