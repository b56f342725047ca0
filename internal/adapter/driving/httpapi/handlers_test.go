package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocmx/netops-finops-dashboard-go/internal/application/usecase"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/estimate"
)

type stubTelemetry struct {
	bills     []entity.BillingRecord
	gotPlazas []string
}

func (s *stubTelemetry) FetchDevices(ctx context.Context, plazas []string) []entity.Device {
	return nil
}

func (s *stubTelemetry) FetchPorts(ctx context.Context, plazas []string) []entity.Port {
	return nil
}

func (s *stubTelemetry) FetchBills(ctx context.Context, plazas []string) []entity.BillingRecord {
	s.gotPlazas = plazas
	return s.bills
}

func newTestHandler(bills []entity.BillingRecord) *Handler {
	uc := usecase.NewReportUseCase(&stubTelemetry{bills: bills}, nil, nil, estimate.NewWithSeed(3), "MXN")
	return NewHandler(uc, nil)
}

func TestFinancialReportLive(t *testing.T) {
	t.Parallel()

	h := newTestHandler([]entity.BillingRecord{
		{BillID: "1", Name: "COGENT MTY", Type: entity.BillingTypeQuota,
			Quota: entity.FlexFloat(2e9), Rate95thIn: entity.FlexFloat(40_000_000)},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/report?period=3m", nil)
	rec := httptest.NewRecorder()
	h.FinancialReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report entity.FinancialReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, entity.SourceRealData, report.Source)
	assert.Equal(t, "3m", report.Summary.Period)
	assert.Equal(t, "trimestral", report.Summary.PeriodLabel)
	assert.NotEmpty(t, report.CarrierAnalysis)
}

func TestFinancialReportDemoFallbackStillOK(t *testing.T) {
	t.Parallel()

	// Upstream sin datos: la respuesta sigue siendo 200 con el mismo esquema.
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/report", nil)
	rec := httptest.NewRecorder()
	h.FinancialReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report entity.FinancialReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, entity.SourceDemoData, report.Source)
	assert.Equal(t, "1m", report.Summary.Period) // período por defecto
	assert.NotEmpty(t, report.CarrierAnalysis)
	assert.NotEmpty(t, report.OptimizationOpportunities)
}

func TestFinancialReportPlazaScoping(t *testing.T) {
	t.Parallel()

	stub := &stubTelemetry{}
	uc := usecase.NewReportUseCase(stub, nil, nil, estimate.NewWithSeed(3), "MXN")
	h := NewHandler(uc, []string{"Tijuana"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/report?plaza=Monterrey&plaza=Guadalajara", nil)
	h.FinancialReport(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"Monterrey", "Guadalajara"}, stub.gotPlazas)

	// Sin parámetro plaza manda el default del handler.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/finance/report", nil)
	h.FinancialReport(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"Tijuana"}, stub.gotPlazas)
}

func TestRouting(t *testing.T) {
	t.Parallel()

	srv := NewServer(":0", newTestHandler(nil))
	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(ts.URL + "/api/v1/finance/report?period=1y")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
