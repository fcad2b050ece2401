package aggregation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/domain/metrics"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

func rec(segment, category, sub, region, city, product, day string, sales, profit, discount float64, qty int) entity.SalesRecord {
	return entity.SalesRecord{
		Segment: segment, Category: category, SubCategory: sub, Region: region, City: city,
		ProductName: product, OrderDay: day, Sales: sales, Profit: profit, Discount: discount, Quantity: qty,
	}
}

var sourceColumns = []string{
	entity.ColSales, entity.ColProfit, entity.ColDiscount, entity.ColQuantity, entity.ColSegment,
	entity.ColCategory, entity.ColSubCategory, entity.ColRegion, entity.ColCity, entity.ColProductName, entity.ColOrderDay,
}

func enrich(t *testing.T, records ...entity.SalesRecord) *entity.Table {
	t.Helper()
	table, err := metrics.NewDeriver(entity.ZeroSalesNaN).Enrich(entity.NewTable(sourceColumns, records))
	require.NoError(t, err)
	return table
}

func fixture(t *testing.T) *entity.Table {
	return enrich(t,
		rec("Consumer", "Furniture", "Chairs", "South", "Henderson", "Chair A", "Monday", 200, 40, 0, 2),
		rec("Consumer", "Furniture", "Tables", "South", "Henderson", "Table B", "Tuesday", 500, -150, 0.45, 3),
		rec("Corporate", "Office Supplies", "Labels", "West", "Seattle", "Labels C", "Monday", 20, 8, 0, 5),
		rec("Corporate", "Technology", "Phones", "East", "New York City", "Phone D", "Friday", 800, 120, 0.2, 4),
		rec("Home Office", "Technology", "Phones", "East", "New York City", "Phone D", "Sunday", 400, -20, 0.2, 1),
		rec("Home Office", "Office Supplies", "Binders", "Central", "Chicago", "Binder F", "Monday", 50, -30, 0.8, 5),
	)
}

func TestTotals(t *testing.T) {
	totals, err := Totals(fixture(t))
	require.NoError(t, err)

	assert.InDelta(t, 1970.0, totals.Sales, 1e-9)
	assert.InDelta(t, -32.0, totals.Profit, 1e-9)
	assert.InDelta(t, -200.0, totals.Loss, 1e-9)
	assert.InDelta(t, 200.0, totals.AbsLoss(), 1e-9)
}

func TestProfitBySegment(t *testing.T) {
	s, err := ProfitBySegment(fixture(t))
	require.NoError(t, err)

	assert.Equal(t, []entity.Pair{
		{Key: "Consumer", Value: -110},
		{Key: "Home Office", Value: -50},
		{Key: "Corporate", Value: 128},
	}, s.Pairs)
	assert.Equal(t, "sum(Profit)", s.Metric)
}

func TestQuantityBySegmentCategory(t *testing.T) {
	rows, err := QuantityBySegmentCategory(fixture(t))
	require.NoError(t, err)

	assert.Equal(t, []entity.SegmentCategory{
		{Segment: "Consumer", Category: "Furniture", Quantity: 5},
		{Segment: "Corporate", Category: "Office Supplies", Quantity: 5},
		{Segment: "Corporate", Category: "Technology", Quantity: 4},
		{Segment: "Home Office", Category: "Office Supplies", Quantity: 5},
		{Segment: "Home Office", Category: "Technology", Quantity: 1},
	}, rows)
}

func TestProfitByCategory_PartitionsTotalProfit(t *testing.T) {
	table := fixture(t)
	s, err := ProfitByCategory(table)
	require.NoError(t, err)
	assert.Equal(t, []string{"Furniture", "Office Supplies", "Technology"}, s.Keys())

	totals, err := Totals(table)
	require.NoError(t, err)

	var sum float64
	for _, p := range s.Pairs {
		sum += p.Value
	}
	assert.InDelta(t, totals.Profit, sum, 1e-9)
}

func TestProfitBySubCategory(t *testing.T) {
	s, err := ProfitBySubCategory(fixture(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Tables", "Binders", "Labels", "Chairs", "Phones"}, s.Keys())
}

func TestProfitByRegion(t *testing.T) {
	s, err := ProfitByRegion(fixture(t))
	require.NoError(t, err)
	assert.Equal(t, []entity.Pair{
		{Key: "South", Value: -110},
		{Key: "Central", Value: -30},
		{Key: "West", Value: 8},
		{Key: "East", Value: 100},
	}, s.Pairs)
}

func TestDiscountHistogram(t *testing.T) {
	h, err := DiscountHistogram(fixture(t), 4)
	require.NoError(t, err)

	require.Len(t, h.Bins, 4)
	counts := []int{h.Bins[0].Count, h.Bins[1].Count, h.Bins[2].Count, h.Bins[3].Count}
	assert.Equal(t, []int{2, 2, 1, 1}, counts)
	assert.Equal(t, 6, h.Total())
	assert.InDelta(t, 0.0, h.Bins[0].Lower, 1e-9)
	assert.InDelta(t, 80.0, h.Bins[3].Upper, 1e-9)
}

func TestDiscountHistogram_DefaultBins(t *testing.T) {
	h, err := DiscountHistogram(fixture(t), 0)
	require.NoError(t, err)
	assert.Len(t, h.Bins, DefaultHistogramBins)
	assert.Equal(t, 6, h.Total())
}

func TestDiscountHistogram_SingleValue(t *testing.T) {
	table := enrich(t, rec("Consumer", "Furniture", "Chairs", "South", "Henderson", "Chair A", "Monday", 100, 10, 0.2, 1))
	h, err := DiscountHistogram(table, 2)
	require.NoError(t, err)

	require.Len(t, h.Bins, 2)
	assert.InDelta(t, 19.5, h.Bins[0].Lower, 1e-9)
	assert.InDelta(t, 20.5, h.Bins[1].Upper, 1e-9)
	assert.Equal(t, 1, h.Total())
}

func TestDiscountHistogram_EmptyTable(t *testing.T) {
	h, err := DiscountHistogram(enrich(t), 30)
	require.NoError(t, err)
	assert.Empty(t, h.Bins)
}

func TestProfitByDiscountRange(t *testing.T) {
	s, err := ProfitByDiscountRange(fixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "20", "40", "80"}, s.Keys())
	assert.Equal(t, "mean(Profit)", s.Metric)
	for key, want := range map[string]float64{"0": 24, "20": 50, "40": -150, "80": -30} {
		got, err := s.Value(key)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, key)
	}
}

func TestDiscountRange(t *testing.T) {
	assert.Equal(t, 0.0, DiscountRange(9.99))
	assert.Equal(t, 10.0, DiscountRange(10))
	assert.Equal(t, 70.0, DiscountRange(70))
}

func TestLossRiskSplit(t *testing.T) {
	split, err := LossRiskSplit(fixture(t))
	require.NoError(t, err)
	assert.Equal(t, entity.RiskSplit{AtRisk: 4, Safe: 2}, split)
}

func TestLossRiskSplit_AllSafeReturnsZeroNotFailure(t *testing.T) {
	table := enrich(t,
		rec("Consumer", "Furniture", "Chairs", "South", "Henderson", "Chair A", "Monday", 100, 50, 0, 1),
		rec("Consumer", "Furniture", "Chairs", "South", "Henderson", "Chair A", "Monday", 100, 30, 0.1, 1),
		rec("Consumer", "Furniture", "Chairs", "South", "Henderson", "Chair A", "Monday", 100, 10, 0, 1),
	)
	split, err := LossRiskSplit(table)
	require.NoError(t, err)
	assert.Equal(t, 0, split.Count(true))
	assert.Equal(t, 3, split.Count(false))
}

func TestTopCitiesBySales(t *testing.T) {
	cities, err := TopCitiesBySales(fixture(t), 3)
	require.NoError(t, err)

	require.Len(t, cities, 3)
	assert.Equal(t, entity.CityTotals{City: "New York City", Sales: 1200, Profit: 100}, cities[0])
	assert.Equal(t, entity.CityTotals{City: "Henderson", Sales: 700, Profit: -110}, cities[1])
	assert.Equal(t, entity.CityTotals{City: "Chicago", Sales: 50, Profit: -30}, cities[2])
}

func TestOrdersByWeekday(t *testing.T) {
	s, err := OrdersByWeekday(fixture(t))
	require.NoError(t, err)

	assert.Equal(t, entity.Weekdays, s.Keys())
	values := make([]float64, 0, len(s.Pairs))
	for _, p := range s.Pairs {
		values = append(values, p.Value)
	}
	assert.Equal(t, []float64{3, 1, 0, 0, 1, 0, 1}, values)
}

func TestTopProductsByQuantity_TiesBrokenByName(t *testing.T) {
	s, err := TopProductsByQuantity(fixture(t), 10)
	require.NoError(t, err)

	assert.Equal(t, []entity.Pair{
		{Key: "Binder F", Value: 5},
		{Key: "Labels C", Value: 5},
		{Key: "Phone D", Value: 5},
		{Key: "Table B", Value: 3},
		{Key: "Chair A", Value: 2},
	}, s.Pairs)
}

func TestTopProductsByQuantity_AtMostN(t *testing.T) {
	records := make([]entity.SalesRecord, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, rec("Consumer", "Furniture", "Chairs", "South", "Henderson",
			fmt.Sprintf("Product %02d", i), "Monday", 10, 1, 0, i%4+1))
	}
	s, err := TopProductsByQuantity(enrich(t, records...), 0)
	require.NoError(t, err)

	require.Equal(t, DefaultTopN, s.Len())
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Pairs[i-1], s.Pairs[i]
		assert.True(t, prev.Value > cur.Value || (prev.Value == cur.Value && prev.Key < cur.Key),
			"%v should precede %v", prev, cur)
	}
}

func TestWorstProductsByProfit(t *testing.T) {
	s, err := WorstProductsByProfit(fixture(t), 2)
	require.NoError(t, err)
	assert.Equal(t, []entity.Pair{{Key: "Table B", Value: -150}, {Key: "Binder F", Value: -30}}, s.Pairs)
}

func TestCatalog_MissingColumn(t *testing.T) {
	bare := entity.NewTable([]string{entity.ColSales}, []entity.SalesRecord{{Sales: 1}})

	calls := map[string]func() error{
		"totals":                    func() error { _, err := Totals(bare); return err },
		"profitBySegment":           func() error { _, err := ProfitBySegment(bare); return err },
		"quantityBySegmentCategory": func() error { _, err := QuantityBySegmentCategory(bare); return err },
		"profitByCategory":          func() error { _, err := ProfitByCategory(bare); return err },
		"profitBySubCategory":       func() error { _, err := ProfitBySubCategory(bare); return err },
		"discountHistogram":         func() error { _, err := DiscountHistogram(bare, 30); return err },
		"profitByDiscountRange":     func() error { _, err := ProfitByDiscountRange(bare); return err },
		"lossRiskSplit":             func() error { _, err := LossRiskSplit(bare); return err },
		"profitByRegion":            func() error { _, err := ProfitByRegion(bare); return err },
		"topCitiesBySales":          func() error { _, err := TopCitiesBySales(bare, 10); return err },
		"ordersByWeekday":           func() error { _, err := OrdersByWeekday(bare); return err },
		"topProductsByQuantity":     func() error { _, err := TopProductsByQuantity(bare, 10); return err },
		"worstProductsByProfit":     func() error { _, err := WorstProductsByProfit(bare, 10); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMissingColumn))
			assert.Contains(t, err.Error(), name)
		})
	}
}
