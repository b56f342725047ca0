package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nocmx/netops-finops-dashboard-go/internal/application/usecase"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

// Handler holds the HTTP handlers over the report use case.
type Handler struct {
	reports       *usecase.ReportUseCase
	defaultPlazas []string
}

// NewHandler creates the handler set. defaultPlazas scopes the upstream
// queries when the request does not name plazas itself; empty means all
// known plazas.
func NewHandler(reports *usecase.ReportUseCase, defaultPlazas []string) *Handler {
	return &Handler{reports: reports, defaultPlazas: defaultPlazas}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// FinancialReport runs one pipeline execution for the requested period.
// Pipeline failures degrade into the demo report inside the use case, so
// this handler always answers 200 with a well-formed body; only an
// encoding failure surfaces as an error.
func (h *Handler) FinancialReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period := entity.PeriodFromCode(query.Get("period"))
	plazas := query["plaza"]
	if len(plazas) == 0 {
		plazas = h.defaultPlazas
	}
	report := h.reports.GenerateReport(r.Context(), period, plazas)
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("encoding response", zap.Error(err))
	}
}
