// Package metrics derives the per-record summary columns (Discount (%), Profit Margin (%)
// and Loss Risk) the dashboard aggregates over.
package metrics

import (
	"fmt"
	"math"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// Deriver enriches a loaded table with the derived columns.
type Deriver struct {
	zeroSales entity.ZeroSalesPolicy
}

// NewDeriver cria um Deriver com a política de Sales = 0 informada (vazia = NaN).
func NewDeriver(policy entity.ZeroSalesPolicy) *Deriver {
	if policy == "" {
		policy = entity.ZeroSalesNaN
	}
	return &Deriver{zeroSales: policy}
}

// Enrich returns a new table where Discount (%), Profit Margin (%) and Loss Risk are present.
// Columns already in the table pass through unchanged, so enriching twice is a no-op.
func (d *Deriver) Enrich(t *entity.Table) (*entity.Table, error) {
	needPct := !t.Has(entity.ColDiscountPct)
	needMargin := !t.Has(entity.ColProfitMargin)
	needRisk := !t.Has(entity.ColLossRisk)

	if needPct {
		if err := t.Require(entity.ColDiscount); err != nil {
			return nil, fmt.Errorf("deriving %s: %w", entity.ColDiscountPct, err)
		}
	}
	if needMargin {
		if err := t.Require(entity.ColSales, entity.ColProfit); err != nil {
			return nil, fmt.Errorf("deriving %s: %w", entity.ColProfitMargin, err)
		}
	}
	// Profit decide o risco quando a margem é NaN.
	if needRisk {
		if err := t.Require(entity.ColProfit); err != nil {
			return nil, fmt.Errorf("deriving %s: %w", entity.ColLossRisk, err)
		}
	}

	records := t.Records()
	for i := range records {
		r := &records[i]
		if needPct {
			r.DiscountPct = DiscountPct(r.Discount)
		}
		if needMargin {
			margin, err := d.profitMargin(r.Profit, r.Sales)
			if err != nil {
				return nil, fmt.Errorf("deriving %s at %s: %w", entity.ColProfitMargin, location(*r, i), err)
			}
			r.ProfitMargin = margin
		}
		if needRisk {
			r.LossRisk = LossRisk(*r)
		}
	}

	columns := t.Columns()
	for _, c := range []string{entity.ColDiscountPct, entity.ColProfitMargin, entity.ColLossRisk} {
		if !t.Has(c) {
			columns = append(columns, c)
		}
	}
	return entity.NewTable(columns, records), nil
}

// location names a record the way the loader does: "line N" of the source file, plus the
// 1-based data row. Tables built in memory have no line.
func location(r entity.SalesRecord, i int) string {
	if r.Line > 0 {
		return fmt.Sprintf("line %d (data row %d)", r.Line, i+1)
	}
	return fmt.Sprintf("data row %d", i+1)
}

func (d *Deriver) profitMargin(profit, sales float64) (float64, error) {
	if sales == 0 {
		if d.zeroSales == entity.ZeroSalesFail {
			return 0, fmt.Errorf("%w: Sales is 0", types.ErrDivisionByZero)
		}
		return math.NaN(), nil
	}
	return profit / sales * 100, nil
}

// DiscountPct converte a fração de desconto em porcentagem.
func DiscountPct(discount float64) float64 {
	return discount * 100
}

// LossRisk reports whether the discount percentage exceeds the profit margin. When the
// margin is undefined (zero Sales) the record is at risk only if it already lost money.
func LossRisk(r entity.SalesRecord) bool {
	if math.IsNaN(r.ProfitMargin) {
		return r.Profit < 0
	}
	return r.DiscountPct > r.ProfitMargin
}
