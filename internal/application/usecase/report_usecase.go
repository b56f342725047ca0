package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/classify"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/estimate"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/repository"
	"github.com/nocmx/netops-finops-dashboard-go/internal/shared/types"
	"github.com/nocmx/netops-finops-dashboard-go/pkg/console"
)

// ReportUseCase runs the financial aggregation pipeline: fetch → classify
// → estimate → aggregate → optimize → summarize, degrading toward the
// demo generator when the live path yields nothing.
type ReportUseCase struct {
	telemetry  repository.TelemetryRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	estimator  *estimate.Estimator
	currency   string
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	telemetry repository.TelemetryRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	estimator *estimate.Estimator,
	currency string,
) *ReportUseCase {
	if currency == "" {
		currency = "MXN"
	}
	return &ReportUseCase{
		telemetry:  telemetry,
		exportRepo: exportRepo,
		console:    console,
		estimator:  estimator,
		currency:   currency,
	}
}

// estimatedRecord is one classified, estimated telemetry record flowing
// into aggregation.
type estimatedRecord struct {
	Carrier  string
	Plaza    string
	Estimate estimate.Estimate
}

// GenerateReport executes one request-scoped pipeline run. It never
// fails: when the live pipeline produces no aggregates the synthetic
// demo report is returned instead, tagged with its source.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, period entity.ReportPeriod, plazas []string) entity.FinancialReport {
	if len(plazas) == 0 {
		plazas = classify.KnownPlazas()
	}

	devices, ports, bills := uc.fetchTelemetry(ctx, plazas)
	records := uc.estimateRecords(devices, ports, bills)

	carriers, carrierPlaza := aggregateCarriers(records)
	if len(carriers) == 0 {
		zap.L().Warn("serving demo report",
			zap.Error(types.ErrEmptyReport),
			zap.String("period", period.Code),
		)
		return uc.demoReport(period)
	}

	scaleCarriers(carriers, period.Multiplier)
	opportunities := buildOpportunities(carriers, carrierPlaza)
	plazaAggs := aggregatePlazas(records, period.Multiplier)

	return entity.FinancialReport{
		Summary:                   buildSummary(carriers, opportunities, period, uc.currency),
		CarrierAnalysis:           carriers,
		PlazaBreakdown:            plazaAggs,
		OptimizationOpportunities: opportunities,
		Timestamp:                 time.Now().UTC(),
		Source:                    entity.SourceRealData,
	}
}

// fetchTelemetry issues the three record-type queries concurrently. Each
// repository call is already fault-tolerant, so the merge just waits for
// all three to settle.
func (uc *ReportUseCase) fetchTelemetry(ctx context.Context, plazas []string) ([]entity.Device, []entity.Port, []entity.BillingRecord) {
	var (
		wg      sync.WaitGroup
		devices []entity.Device
		ports   []entity.Port
		bills   []entity.BillingRecord
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		devices = uc.telemetry.FetchDevices(ctx, plazas)
	}()
	go func() {
		defer wg.Done()
		ports = uc.telemetry.FetchPorts(ctx, plazas)
	}()
	go func() {
		defer wg.Done()
		bills = uc.telemetry.FetchBills(ctx, plazas)
	}()
	wg.Wait()

	zap.L().Debug("telemetry fetched",
		zap.Int("devices", len(devices)),
		zap.Int("ports", len(ports)),
		zap.Int("bills", len(bills)),
	)
	return devices, ports, bills
}

// estimateRecords classifies and estimates every record. Billing records
// are the primary source; ports only back-fill carriers that have no
// billing data at all, and their synthetic estimates stay tagged
// "estimated" end to end.
func (uc *ReportUseCase) estimateRecords(devices []entity.Device, ports []entity.Port, bills []entity.BillingRecord) []estimatedRecord {
	// Ubicación de cada dispositivo, para resolver la plaza de sus puertos.
	devicePlaza := make(map[string]string, len(devices))
	for _, d := range devices {
		devicePlaza[d.DeviceID] = classify.Plaza(d.Location)
	}

	records := make([]estimatedRecord, 0, len(bills)+len(ports))
	billedCarriers := make(map[string]bool)

	for _, bill := range bills {
		carrier := classify.Carrier(bill.Name)
		plaza := classify.Plaza(bill.Name)
		if plaza == classify.PlazaUnknown {
			plaza = classify.Plaza(bill.BillLocation)
		}
		billedCarriers[carrier] = true
		records = append(records, estimatedRecord{
			Carrier:  carrier,
			Plaza:    plaza,
			Estimate: uc.estimator.FromBill(bill, carrier),
		})
	}

	for _, port := range ports {
		descriptor := port.IfAlias
		if descriptor == "" {
			descriptor = port.IfDescr
		}
		carrier := classify.Carrier(descriptor)
		if billedCarriers[carrier] {
			continue
		}
		plaza, ok := devicePlaza[port.DeviceID]
		if !ok || plaza == classify.PlazaUnknown {
			plaza = classify.Plaza(descriptor)
		}
		records = append(records, estimatedRecord{
			Carrier:  carrier,
			Plaza:    plaza,
			Estimate: uc.estimator.FromPort(port, carrier),
		})
	}

	return records
}

// RunDashboard renders the report in the terminal and optionally exports
// it, driven by the CLI arguments.
func (uc *ReportUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	period := entity.PeriodFromCode(args.Period)

	status := uc.console.Status("Consultando la fuente de monitoreo...")
	report := uc.GenerateReport(ctx, period, args.Plazas)
	status.Stop()

	if report.Source == entity.SourceDemoData {
		uc.console.LogWarning("Sin datos del upstream; mostrando reporte sintético (%s)", entity.SourceDemoData)
	}

	uc.renderReport(report)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReport(report, args)
	}
	return nil
}

// statusLabel colorea el estado del carrier para la terminal.
func statusLabel(status string) string {
	switch status {
	case entity.StatusEfficient:
		return console.BrightGreen(status)
	case entity.StatusAttention:
		return console.BrightYellow(status)
	case entity.StatusCritical:
		return console.BrightRed(status)
	case entity.StatusCapacityRisk:
		return console.BrightMagenta(status)
	default:
		return status
	}
}

// priorityLabel resalta las prioridades altas.
func priorityLabel(priority string) string {
	if priority == entity.PriorityHigh {
		return console.BoldRed(priority)
	}
	return priority
}

// renderReport dibuja las tablas del reporte en la terminal.
func (uc *ReportUseCase) renderReport(report entity.FinancialReport) {
	s := report.Summary
	uc.console.LogInfo("Periodo: %s (%s)  Moneda: %s", s.Period, s.PeriodLabel, s.Currency)
	uc.console.LogInfo("Costo total: %s  Utilización promedio: %.1f%%  Ahorro potencial: $%.2f",
		console.BrightCyan(fmt.Sprintf("$%.2f", s.TotalMonthlyCost)), s.AverageUtilization, s.PotentialSavings)

	carrierTable := uc.console.CreateTable()
	carrierTable.AddColumn("Carrier")
	carrierTable.AddColumn("Costo")
	carrierTable.AddColumn("Contratado (Mbps)")
	carrierTable.AddColumn("Utilizado (Mbps)")
	carrierTable.AddColumn("Utilización")
	carrierTable.AddColumn("Estado")
	carrierTable.AddColumn("Ahorro potencial")
	for _, c := range report.CarrierAnalysis {
		carrierTable.AddRow(
			c.Carrier,
			fmt.Sprintf("$%.2f", c.MonthlyCost),
			fmt.Sprintf("%.0f", c.ContractedMbps),
			fmt.Sprintf("%.0f", c.UtilizedMbps),
			fmt.Sprintf("%.1f%%", c.UtilizationPercentage),
			statusLabel(c.Status),
			fmt.Sprintf("$%.2f", c.PotentialSaving),
		)
	}
	uc.console.Print(carrierTable.Render())

	plazaTable := uc.console.CreateTable()
	plazaTable.AddColumn("Plaza")
	plazaTable.AddColumn("Costo")
	plazaTable.AddColumn("Carriers")
	plazaTable.AddColumn("Eficiencia")
	plazaTable.AddColumn("Oportunidades")
	for _, p := range report.PlazaBreakdown {
		plazaTable.AddRow(
			p.Plaza,
			fmt.Sprintf("$%.2f", p.MonthlyCost),
			fmt.Sprintf("%d", p.Carriers),
			fmt.Sprintf("%.1f%%", p.Efficiency),
			fmt.Sprintf("%d", p.OptimizationOpportunities),
		)
	}
	uc.console.Print(plazaTable.Render())

	if len(report.OptimizationOpportunities) > 0 {
		oppTable := uc.console.CreateTable()
		oppTable.AddColumn("Acción")
		oppTable.AddColumn("Carrier")
		oppTable.AddColumn("Plaza")
		oppTable.AddColumn("Ahorro")
		oppTable.AddColumn("Prioridad")
		for _, o := range report.OptimizationOpportunities {
			oppTable.AddRow(o.Type, o.Carrier, o.Plaza, fmt.Sprintf("$%.2f", o.PotentialSaving), priorityLabel(o.Priority))
		}
		uc.console.Print(oppTable.Render())
	}
}

func (uc *ReportUseCase) exportReport(report entity.FinancialReport, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", path)
			}
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}
