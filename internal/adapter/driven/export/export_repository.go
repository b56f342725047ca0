package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the carrier analysis as a flat CSV table.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.FinancialReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Carrier", fmt.Sprintf("Cost (%s, %s)", report.Summary.PeriodLabel, report.Summary.Currency),
		"Contracted Mbps", "Utilized Mbps", "Utilization %", "Cost per Mbps",
		"Status", "Potential Saving", "Bills", "Data Source",
	}
	writer.Write(headers)

	for _, c := range report.CarrierAnalysis {
		writer.Write([]string{
			c.Carrier,
			fmt.Sprintf("%.2f", c.MonthlyCost),
			fmt.Sprintf("%.1f", c.ContractedMbps),
			fmt.Sprintf("%.1f", c.UtilizedMbps),
			fmt.Sprintf("%.1f", c.UtilizationPercentage),
			fmt.Sprintf("%.2f", c.CostPerMbps),
			c.Status,
			fmt.Sprintf("%.2f", c.PotentialSaving),
			fmt.Sprintf("%d", c.BillCount),
			c.DataSource,
		})
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON writes the full report, same shape as the HTTP response.
func (r *ExportRepositoryImpl) ExportToJSON(report entity.FinancialReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF renders summary, carrier and opportunity sections.
func (r *ExportRepositoryImpl) ExportToPDF(report entity.FinancialReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, tr("Reporte Financiero de Red"))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Periodo: %s (%s)  ·  Generado: %s  ·  Fuente: %s",
		report.Summary.Period, report.Summary.PeriodLabel,
		report.Timestamp.Format("2006-01-02 15:04 UTC"), report.Source)))
	pdf.Ln(10)

	s := report.Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Resumen")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf(
		"Costo total: $%.2f %s    Utilización promedio: %.1f%%    Ahorro potencial: $%.2f    Contratos optimizables: %d    Costo por Mbps: $%.2f",
		s.TotalMonthlyCost, s.Currency, s.AverageUtilization, s.PotentialSavings, s.OptimizableContracts, s.CostPerMbps)), "", "", false)
	pdf.Ln(4)

	headers := []string{"Carrier", "Costo", "Mbps contratados", "Mbps utilizados", "Utilización", "Estado", "Ahorro"}
	widths := []float64{45, 35, 40, 40, 30, 35, 35}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, c := range report.CarrierAnalysis {
		cells := []string{
			c.Carrier,
			fmt.Sprintf("$%.2f", c.MonthlyCost),
			fmt.Sprintf("%.0f", c.ContractedMbps),
			fmt.Sprintf("%.0f", c.UtilizedMbps),
			fmt.Sprintf("%.1f%%", c.UtilizationPercentage),
			c.Status,
			fmt.Sprintf("$%.2f", c.PotentialSaving),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	if len(report.OptimizationOpportunities) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 8, tr("Oportunidades de optimización"))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
		for _, o := range report.OptimizationOpportunities {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("[%s / %s] %s — ahorro estimado $%.2f",
				o.Priority, o.Type, o.Description, o.PotentialSaving)), "", "", false)
			pdf.Ln(1)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
