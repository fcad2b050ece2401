package entity

import (
	"fmt"

	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// Table is the loaded (and possibly enriched) dataset. It is never mutated after
// construction: accessors hand out copies.
type Table struct {
	columns []string
	present map[string]bool
	records []SalesRecord
}

// NewTable cria uma tabela a partir das colunas presentes e dos registros.
func NewTable(columns []string, records []SalesRecord) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		present: make(map[string]bool, len(columns)),
		records: make([]SalesRecord, len(records)),
	}
	for _, c := range columns {
		if t.present[c] {
			continue
		}
		t.present[c] = true
		t.columns = append(t.columns, c)
	}
	copy(t.records, records)
	return t
}

// Columns retorna os nomes das colunas na ordem do cabeçalho.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Has reports whether the column is present.
func (t *Table) Has(column string) bool {
	return t.present[column]
}

// Require fails with ErrMissingColumn naming the first absent column.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.present[c] {
			return fmt.Errorf("%w: %q", types.ErrMissingColumn, c)
		}
	}
	return nil
}

// Len retorna o número de registros.
func (t *Table) Len() int {
	return len(t.records)
}

// Record retorna uma cópia do registro i.
func (t *Table) Record(i int) SalesRecord {
	return t.records[i]
}

// Records retorna uma cópia de todos os registros.
func (t *Table) Records() []SalesRecord {
	out := make([]SalesRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Each calls fn with every record in order, by value.
func (t *Table) Each(fn func(SalesRecord)) {
	for _, r := range t.records {
		fn(r)
	}
}
