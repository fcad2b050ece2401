// Package aggregation is the catalog of read-only aggregations the dashboard tabs render.
// Every function is pure: it never modifies the table and returns a fresh result.
package aggregation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

const (
	DefaultTopN          = 10
	DefaultHistogramBins = 30
)

// Totals sums Sales, Profit and the negative profits (Loss).
func Totals(t *entity.Table) (entity.Totals, error) {
	if err := t.Require(entity.ColSales, entity.ColProfit); err != nil {
		return entity.Totals{}, fmt.Errorf("totals: %w", err)
	}
	sales, profit, loss := decimal.Zero, decimal.Zero, decimal.Zero
	t.Each(func(r entity.SalesRecord) {
		sales = sales.Add(toDecimal(r.Sales))
		profit = profit.Add(toDecimal(r.Profit))
		if r.Profit < 0 {
			loss = loss.Add(toDecimal(r.Profit))
		}
	})
	return entity.Totals{
		Sales:  sales.InexactFloat64(),
		Profit: profit.InexactFloat64(),
		Loss:   loss.InexactFloat64(),
	}, nil
}

// ProfitBySegment sums Profit per Segment, ascending by value.
func ProfitBySegment(t *entity.Table) (entity.Series, error) {
	return profitBy(t, "profitBySegment", entity.ColSegment, func(r entity.SalesRecord) string { return r.Segment })
}

// ProfitByCategory sums Profit per Category, ascending by value.
func ProfitByCategory(t *entity.Table) (entity.Series, error) {
	return profitBy(t, "profitByCategory", entity.ColCategory, func(r entity.SalesRecord) string { return r.Category })
}

// ProfitBySubCategory sums Profit per Sub-Category, ascending by value.
func ProfitBySubCategory(t *entity.Table) (entity.Series, error) {
	return profitBy(t, "profitBySubCategory", entity.ColSubCategory, func(r entity.SalesRecord) string { return r.SubCategory })
}

// ProfitByRegion sums Profit per Region, ascending by value.
func ProfitByRegion(t *entity.Table) (entity.Series, error) {
	return profitBy(t, "profitByRegion", entity.ColRegion, func(r entity.SalesRecord) string { return r.Region })
}

func profitBy(t *entity.Table, name, keyColumn string, key func(entity.SalesRecord) string) (entity.Series, error) {
	if err := t.Require(keyColumn, entity.ColProfit); err != nil {
		return entity.Series{}, fmt.Errorf("%s: %w", name, err)
	}
	g := newGroupSum()
	t.Each(func(r entity.SalesRecord) {
		g.add(key(r), r.Profit)
	})
	pairs := g.sumPairs()
	sortAscending(pairs)
	return entity.Series{Name: name, Metric: "sum(Profit)", Pairs: pairs}, nil
}

// QuantityBySegmentCategory sums Quantity per (Segment, Category), ordered by Segment then Category.
func QuantityBySegmentCategory(t *entity.Table) ([]entity.SegmentCategory, error) {
	if err := t.Require(entity.ColSegment, entity.ColCategory, entity.ColQuantity); err != nil {
		return nil, fmt.Errorf("quantityBySegmentCategory: %w", err)
	}
	type groupKey struct{ segment, category string }
	sums := make(map[groupKey]int)
	t.Each(func(r entity.SalesRecord) {
		sums[groupKey{r.Segment, r.Category}] += r.Quantity
	})

	out := make([]entity.SegmentCategory, 0, len(sums))
	for k, q := range sums {
		out = append(out, entity.SegmentCategory{Segment: k.segment, Category: k.category, Quantity: float64(q)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Segment != out[j].Segment {
			return out[i].Segment < out[j].Segment
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// DiscountHistogram counts Discount (%) values in equal-width bins spanning [min, max].
func DiscountHistogram(t *entity.Table, bins int) (entity.Histogram, error) {
	if err := t.Require(entity.ColDiscountPct); err != nil {
		return entity.Histogram{}, fmt.Errorf("discountHistogram: %w", err)
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	h := entity.Histogram{Column: entity.ColDiscountPct}

	values := make([]float64, 0, t.Len())
	t.Each(func(r entity.SalesRecord) {
		if !math.IsNaN(r.DiscountPct) && !math.IsInf(r.DiscountPct, 0) {
			values = append(values, r.DiscountPct)
		}
	})
	if len(values) == 0 {
		return h, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(bins)

	h.Bins = make([]entity.Bin, bins)
	for i := range h.Bins {
		h.Bins[i].Lower = lo + float64(i)*width
		h.Bins[i].Upper = lo + float64(i+1)*width
	}
	h.Bins[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Bins[idx].Count++
	}
	return h, nil
}

// DiscountRange is the 10-point bucket a discount percentage falls into.
func DiscountRange(pct float64) float64 {
	return math.Floor(pct/10) * 10
}

// ProfitByDiscountRange averages Profit per discount range (0, 10, 20, ...), in range order.
func ProfitByDiscountRange(t *entity.Table) (entity.Series, error) {
	if err := t.Require(entity.ColDiscountPct, entity.ColProfit); err != nil {
		return entity.Series{}, fmt.Errorf("profitByDiscountRange: %w", err)
	}
	g := newGroupSum()
	ranges := make(map[string]float64)
	t.Each(func(r entity.SalesRecord) {
		if math.IsNaN(r.DiscountPct) || math.IsInf(r.DiscountPct, 0) {
			return
		}
		rng := DiscountRange(r.DiscountPct)
		key := strconv.FormatFloat(rng, 'f', -1, 64)
		ranges[key] = rng
		g.add(key, r.Profit)
	})
	pairs := g.meanPairs()
	sort.Slice(pairs, func(i, j int) bool {
		return ranges[pairs[i].Key] < ranges[pairs[j].Key]
	})
	return entity.Series{Name: "profitByDiscountRange", Metric: "mean(Profit)", Pairs: pairs}, nil
}

// LossRiskSplit counts records at loss risk and safe ones. A side with no records is 0.
func LossRiskSplit(t *entity.Table) (entity.RiskSplit, error) {
	if err := t.Require(entity.ColLossRisk); err != nil {
		return entity.RiskSplit{}, fmt.Errorf("lossRiskSplit: %w", err)
	}
	var split entity.RiskSplit
	t.Each(func(r entity.SalesRecord) {
		if r.LossRisk {
			split.AtRisk++
		} else {
			split.Safe++
		}
	})
	return split, nil
}

// TopCitiesBySales sums Sales and Profit per City and keeps the n cities with the most sales.
func TopCitiesBySales(t *entity.Table, n int) ([]entity.CityTotals, error) {
	if err := t.Require(entity.ColCity, entity.ColSales, entity.ColProfit); err != nil {
		return nil, fmt.Errorf("topCitiesBySales: %w", err)
	}
	if n <= 0 {
		n = DefaultTopN
	}
	sales, profit := newGroupSum(), newGroupSum()
	t.Each(func(r entity.SalesRecord) {
		sales.add(r.City, r.Sales)
		profit.add(r.City, r.Profit)
	})

	pairs := sales.sumPairs()
	sortDescending(pairs)
	pairs = head(pairs, n)

	out := make([]entity.CityTotals, len(pairs))
	for i, p := range pairs {
		out[i] = entity.CityTotals{City: p.Key, Sales: p.Value, Profit: profit.sums[p.Key].InexactFloat64()}
	}
	return out, nil
}

// OrdersByWeekday counts records per Order Day in Monday..Sunday order, 0 for absent days.
func OrdersByWeekday(t *entity.Table) (entity.Series, error) {
	if err := t.Require(entity.ColOrderDay); err != nil {
		return entity.Series{}, fmt.Errorf("ordersByWeekday: %w", err)
	}
	index := make(map[string]int, len(entity.Weekdays))
	for i, d := range entity.Weekdays {
		index[strings.ToLower(d)] = i
	}
	counts := make([]int, len(entity.Weekdays))
	t.Each(func(r entity.SalesRecord) {
		if i, ok := index[strings.ToLower(strings.TrimSpace(r.OrderDay))]; ok {
			counts[i]++
		}
	})

	pairs := make([]entity.Pair, len(entity.Weekdays))
	for i, d := range entity.Weekdays {
		pairs[i] = entity.Pair{Key: d, Value: float64(counts[i])}
	}
	return entity.Series{Name: "ordersByWeekday", Metric: "count", Pairs: pairs}, nil
}

// TopProductsByQuantity sums Quantity per Product Name and keeps the n best sellers.
func TopProductsByQuantity(t *entity.Table, n int) (entity.Series, error) {
	if err := t.Require(entity.ColProductName, entity.ColQuantity); err != nil {
		return entity.Series{}, fmt.Errorf("topProductsByQuantity: %w", err)
	}
	if n <= 0 {
		n = DefaultTopN
	}
	g := newGroupSum()
	t.Each(func(r entity.SalesRecord) {
		g.add(r.ProductName, float64(r.Quantity))
	})
	pairs := g.sumPairs()
	sortDescending(pairs)
	return entity.Series{Name: "topProductsByQuantity", Metric: "sum(Quantity)", Pairs: head(pairs, n)}, nil
}

// WorstProductsByProfit sums Profit per Product Name and keeps the n biggest losers.
func WorstProductsByProfit(t *entity.Table, n int) (entity.Series, error) {
	if err := t.Require(entity.ColProductName, entity.ColProfit); err != nil {
		return entity.Series{}, fmt.Errorf("worstProductsByProfit: %w", err)
	}
	if n <= 0 {
		n = DefaultTopN
	}
	g := newGroupSum()
	t.Each(func(r entity.SalesRecord) {
		g.add(r.ProductName, r.Profit)
	})
	pairs := g.sumPairs()
	sortAscending(pairs)
	return entity.Series{Name: "worstProductsByProfit", Metric: "sum(Profit)", Pairs: head(pairs, n)}, nil
}
