package repository

import (
	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

// ExportRepository writes a dashboard report to files and returns the absolute path written.
type ExportRepository interface {
	ExportToCSV(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.Report, filename string, outputDir string) (string, error)
	ExportToXLSX(report *entity.Report, filename string, outputDir string) (string, error)
}
