package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// readCSV returns the records and, for each one, the file line it starts on.
// encoding/csv skips blank lines and lets quoted fields span lines, so the index
// of a record is not its line.
func readCSV(r io.Reader) ([][]string, []int, error) {
	reader := csv.NewReader(r)
	// Linhas com menos campos que o cabeçalho são completadas com vazio em buildTable.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		rows  [][]string
		lines []int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csv read error: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, record)
		lines = append(lines, line)
	}
	return rows, lines, nil
}

// readXLSX devolve as linhas da planilha; GetRows mantém linhas vazias, então o índice + 1 é a linha.
func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
