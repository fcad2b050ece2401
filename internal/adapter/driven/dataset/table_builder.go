package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// cellParser grava o valor de uma célula no campo correspondente do registro.
type cellParser func(r *entity.SalesRecord, cell string) error

var parsers = map[string]cellParser{
	entity.ColSales:        finite(func(r *entity.SalesRecord, v float64) { r.Sales = v }),
	entity.ColProfit:       finite(func(r *entity.SalesRecord, v float64) { r.Profit = v }),
	entity.ColDiscount:     finite(func(r *entity.SalesRecord, v float64) { r.Discount = v }),
	entity.ColQuantity:     parseQuantity,
	entity.ColSegment:      text(func(r *entity.SalesRecord, s string) { r.Segment = s }),
	entity.ColCategory:     text(func(r *entity.SalesRecord, s string) { r.Category = s }),
	entity.ColSubCategory:  text(func(r *entity.SalesRecord, s string) { r.SubCategory = s }),
	entity.ColRegion:       text(func(r *entity.SalesRecord, s string) { r.Region = s }),
	entity.ColCity:         text(func(r *entity.SalesRecord, s string) { r.City = s }),
	entity.ColProductName:  text(func(r *entity.SalesRecord, s string) { r.ProductName = s }),
	entity.ColOrderDay:     text(func(r *entity.SalesRecord, s string) { r.OrderDay = s }),
	entity.ColDiscountPct:  nullable(func(r *entity.SalesRecord, v float64) { r.DiscountPct = v }),
	entity.ColProfitMargin: nullable(func(r *entity.SalesRecord, v float64) { r.ProfitMargin = v }),
	entity.ColLossRisk:     parseLossRisk,
}

// buildTable converts raw rows (header first) into a Table. Header names are trimmed;
// columns the dashboard does not read are kept in the column list but not parsed.
// lines[i] is the source line of rows[i]; when nil, row i is line i+1.
func buildTable(rows [][]string, lines []int) (*entity.Table, error) {
	if len(rows) == 0 {
		return nil, errors.New("dataset is empty: missing header row")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	// Primeira ocorrência vence quando o cabeçalho repete um nome.
	index := make(map[string]int)
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	records := make([]entity.SalesRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		line := lineOf(lines, n+1)
		rec := entity.SalesRecord{Line: line}
		for _, col := range entity.KnownColumns {
			parse := parsers[col]
			i, ok := index[col]
			if !ok {
				continue
			}
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			if err := parse(&rec, cell); err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", types.ErrInvalidValue, line, col, err)
			}
		}
		records = append(records, rec)
	}

	return entity.NewTable(header, records), nil
}

func lineOf(lines []int, i int) int {
	if i < len(lines) && lines[i] > 0 {
		return lines[i]
	}
	return i + 1
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func finite(set func(*entity.SalesRecord, float64)) cellParser {
	return func(r *entity.SalesRecord, cell string) error {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", cell)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("not a finite number: %q", cell)
		}
		set(r, v)
		return nil
	}
}

// nullable aceita célula vazia ou "nan" (como o pandas grava NaN) para colunas derivadas.
func nullable(set func(*entity.SalesRecord, float64)) cellParser {
	return func(r *entity.SalesRecord, cell string) error {
		if cell == "" || strings.EqualFold(cell, "nan") {
			set(r, math.NaN())
			return nil
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", cell)
		}
		set(r, v)
		return nil
	}
}

func text(set func(*entity.SalesRecord, string)) cellParser {
	return func(r *entity.SalesRecord, cell string) error {
		set(r, cell)
		return nil
	}
}

func parseQuantity(r *entity.SalesRecord, cell string) error {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || v != math.Trunc(v) || math.IsInf(v, 0) {
		return fmt.Errorf("not an integer: %q", cell)
	}
	r.Quantity = int(v)
	return nil
}

func parseLossRisk(r *entity.SalesRecord, cell string) error {
	v, err := strconv.ParseBool(cell)
	if err != nil {
		return fmt.Errorf("not a boolean: %q", cell)
	}
	r.LossRisk = v
	return nil
}
