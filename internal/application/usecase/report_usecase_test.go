package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/classify"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/estimate"
)

// stubTelemetry feeds the pipeline fixed telemetry, simulando los tres
// tipos de consulta al upstream.
type stubTelemetry struct {
	devices []entity.Device
	ports   []entity.Port
	bills   []entity.BillingRecord
}

func (s *stubTelemetry) FetchDevices(ctx context.Context, plazas []string) []entity.Device {
	return s.devices
}

func (s *stubTelemetry) FetchPorts(ctx context.Context, plazas []string) []entity.Port {
	return s.ports
}

func (s *stubTelemetry) FetchBills(ctx context.Context, plazas []string) []entity.BillingRecord {
	return s.bills
}

func newTestUseCase(stub *stubTelemetry) *ReportUseCase {
	return NewReportUseCase(stub, nil, nil, estimate.NewWithSeed(7), "MXN")
}

func TestGenerateReportFromBills(t *testing.T) {
	t.Parallel()

	stub := &stubTelemetry{
		bills: []entity.BillingRecord{
			{BillID: "1", Name: "COGENT MTY 10G", Type: entity.BillingTypeQuota,
				Quota: entity.FlexFloat(2e9), Rate95thIn: entity.FlexFloat(50_000_000)},
			{BillID: "2", Name: "TI-Sparkle GDL", Type: entity.BillingTypeCDR,
				Allowed: entity.FlexFloat(1e9), Rate95thIn: entity.FlexFloat(90_000_000)},
		},
	}

	report := newTestUseCase(stub).GenerateReport(context.Background(), entity.PeriodFromCode("1m"), nil)

	assert.Equal(t, entity.SourceRealData, report.Source)
	require.Len(t, report.CarrierAnalysis, 2)
	assert.NotZero(t, report.Summary.TotalMonthlyCost)
	assert.Equal(t, "1m", report.Summary.Period)
	assert.Equal(t, "mensual", report.Summary.PeriodLabel)
	assert.Equal(t, "MXN", report.Summary.Currency)

	var carrierSum float64
	for _, c := range report.CarrierAnalysis {
		carrierSum += c.MonthlyCost
		assert.Equal(t, entity.DataSourceBilling, c.DataSource)
		assert.LessOrEqual(t, c.PotentialSaving, c.MonthlyCost)
	}
	assert.InDelta(t, carrierSum, report.Summary.TotalMonthlyCost, 0.0001)
}

func TestGenerateReportPortFallback(t *testing.T) {
	t.Parallel()

	// Sin facturación para el carrier: los puertos de tránsito lo respaldan
	// y el agregado queda marcado como estimado.
	stub := &stubTelemetry{
		devices: []entity.Device{
			{DeviceID: "9", Hostname: "core-mty-01", Location: "MTY Apodaca", Status: 1},
		},
		ports: []entity.Port{
			{PortID: "1", DeviceID: "9", IfAlias: "Transit-COGENT-MTY",
				IfSpeed: entity.FlexFloat(10e9), IfOperStatus: "up"},
		},
	}

	report := newTestUseCase(stub).GenerateReport(context.Background(), entity.PeriodFromCode("1m"), nil)

	assert.Equal(t, entity.SourceRealData, report.Source)
	require.Len(t, report.CarrierAnalysis, 1)

	agg := report.CarrierAnalysis[0]
	assert.Equal(t, classify.CarrierCogent, agg.Carrier)
	assert.Equal(t, entity.DataSourceEstimated, agg.DataSource)
	assert.NotZero(t, agg.MonthlyCost)
	assert.NotZero(t, agg.ContractedMbps)
	assert.Zero(t, agg.BillCount)

	require.Len(t, report.PlazaBreakdown, 1)
	assert.Equal(t, classify.PlazaMonterrey, report.PlazaBreakdown[0].Plaza)
}

func TestGenerateReportBillsSuppressPortFallback(t *testing.T) {
	t.Parallel()

	stub := &stubTelemetry{
		bills: []entity.BillingRecord{
			{BillID: "1", Name: "COGENT MTY", Type: entity.BillingTypeQuota,
				Quota: entity.FlexFloat(2e9), Rate95thIn: entity.FlexFloat(50_000_000)},
		},
		ports: []entity.Port{
			{PortID: "1", IfAlias: "Transit-COGENT-MTY", IfSpeed: entity.FlexFloat(10e9), IfOperStatus: "up"},
		},
	}

	report := newTestUseCase(stub).GenerateReport(context.Background(), entity.PeriodFromCode("1m"), nil)

	require.Len(t, report.CarrierAnalysis, 1)
	assert.Equal(t, entity.DataSourceBilling, report.CarrierAnalysis[0].DataSource)
	assert.Equal(t, 1, report.CarrierAnalysis[0].BillCount)
}

func TestGenerateReportDemoFallback(t *testing.T) {
	t.Parallel()

	// Upstream caído por completo: todas las consultas regresan vacío.
	report := newTestUseCase(&stubTelemetry{}).GenerateReport(context.Background(), entity.PeriodFromCode("1m"), nil)

	assert.Equal(t, entity.SourceDemoData, report.Source)
	assert.NotEmpty(t, report.CarrierAnalysis)
	assert.NotEmpty(t, report.PlazaBreakdown)
	assert.NotEmpty(t, report.OptimizationOpportunities)
	assert.NotZero(t, report.Summary.TotalMonthlyCost)
	assert.False(t, report.Timestamp.IsZero())

	// Mismas invariantes que un reporte vivo.
	var carrierSum float64
	for _, c := range report.CarrierAnalysis {
		carrierSum += c.MonthlyCost
		assert.LessOrEqual(t, c.PotentialSaving, c.MonthlyCost)
	}
	assert.InDelta(t, carrierSum, report.Summary.TotalMonthlyCost, 0.0001)
}

func TestGenerateReportPeriodScaling(t *testing.T) {
	t.Parallel()

	stub := &stubTelemetry{
		bills: []entity.BillingRecord{
			{BillID: "1", Name: "COGENT MTY", Type: entity.BillingTypeQuota, Quota: entity.FlexFloat(0)},
		},
	}
	uc := newTestUseCase(stub)

	monthly := uc.GenerateReport(context.Background(), entity.PeriodFromCode("1m"), nil)
	annual := uc.GenerateReport(context.Background(), entity.PeriodFromCode("1y"), nil)

	assert.InDelta(t, monthly.Summary.TotalMonthlyCost*12, annual.Summary.TotalMonthlyCost, 0.0001)
	assert.Equal(t, "anual", annual.Summary.PeriodLabel)
}

func TestGenerateReportUnknownPeriodDefaults(t *testing.T) {
	t.Parallel()

	p := entity.PeriodFromCode("2h")
	assert.Equal(t, "1m", p.Code)
	assert.Equal(t, 1.0, p.Multiplier)
}

func TestStatusAndPriorityLabels(t *testing.T) {
	t.Parallel()

	// Las etiquetas pueden llevar códigos ANSI, pero siempre contienen el texto.
	for _, status := range []string{
		entity.StatusEfficient,
		entity.StatusAttention,
		entity.StatusCritical,
		entity.StatusCapacityRisk,
	} {
		assert.Contains(t, statusLabel(status), status)
	}
	assert.Equal(t, "weird", statusLabel("weird"))

	assert.Contains(t, priorityLabel(entity.PriorityHigh), entity.PriorityHigh)
	assert.Equal(t, entity.PriorityLow, priorityLabel(entity.PriorityLow))
}
