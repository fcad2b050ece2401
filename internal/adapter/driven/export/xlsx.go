package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

const summarySheet = "Summary"

// ExportToXLSX escreve uma planilha por aba, com as tabelas empilhadas.
func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("error creating XLSX summary sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Report ID", report.ID},
		{"Generated At", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Source", report.Source},
		{"Records", report.Records},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return "", fmt.Errorf("error writing XLSX summary: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}

	next := make(map[entity.Tab]int)
	for _, s := range reportSections(report) {
		sheet := s.tab.Title()
		line, ok := next[s.tab]
		if !ok {
			if _, err := f.NewSheet(sheet); err != nil {
				return "", fmt.Errorf("error creating XLSX sheet %q: %w", sheet, err)
			}
			line = 1
		}

		titleCell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetCellStr(sheet, titleCell, s.title); err != nil {
			return "", fmt.Errorf("error writing XLSX sheet %q: %w", sheet, err)
		}
		if err := f.SetCellStyle(sheet, titleCell, titleCell, bold); err != nil {
			return "", fmt.Errorf("error styling XLSX sheet %q: %w", sheet, err)
		}
		line++

		header := make([]interface{}, len(s.header))
		for i, h := range s.header {
			header[i] = h
		}
		headerCell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetSheetRow(sheet, headerCell, &header); err != nil {
			return "", fmt.Errorf("error writing XLSX sheet %q: %w", sheet, err)
		}
		line++

		for _, row := range s.rows {
			cells := make([]interface{}, 0, len(row.keys)+len(row.values))
			for _, k := range row.keys {
				cells = append(cells, k)
			}
			for _, v := range row.values {
				cells = append(cells, v)
			}
			cell, _ := excelize.CoordinatesToCellName(1, line)
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return "", fmt.Errorf("error writing XLSX sheet %q: %w", sheet, err)
			}
			line++
		}

		next[s.tab] = line + 1
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}
