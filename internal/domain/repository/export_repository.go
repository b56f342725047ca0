package repository

import (
	"github.com/nocmx/netops-finops-dashboard-go/internal/domain/entity"
)

// ExportRepository defines the interface for writing the financial
// report to disk in the supported formats.
type ExportRepository interface {
	ExportToCSV(report entity.FinancialReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.FinancialReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.FinancialReport, filename string, outputDir string) (string, error)
}
