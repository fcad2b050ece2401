package usecase

import (
	"fmt"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// renderReport exibe as abas calculadas na ordem do relatório.
func (uc *DashboardUseCase) renderReport(report *entity.Report) {
	for _, tab := range report.Tabs {
		uc.console.DisplayHeader(tab.Title())
		switch tab {
		case entity.TabKPIs:
			uc.renderKPIs(report.KPIs)
		case entity.TabSegments:
			uc.renderSegments(report.Segments)
		case entity.TabProducts:
			uc.renderProducts(report.Products)
		case entity.TabDiscounts:
			uc.renderDiscounts(report.Discounts)
		case entity.TabRegions:
			uc.renderRegions(report.Regions)
		case entity.TabTrends:
			uc.renderTrends(report.Trends)
		case entity.TabTopProducts:
			uc.renderTopProducts(report.TopProducts)
		}
	}
}

func (uc *DashboardUseCase) renderKPIs(v *entity.KPIView) {
	if v == nil {
		return
	}
	uc.console.DisplayMetrics([]types.Metric{
		{Label: "Total Sales", Value: money(v.Totals.Sales)},
		{Label: "Total Profit", Value: money(v.Totals.Profit)},
		{Label: "Total Loss", Value: money(v.Totals.AbsLoss())},
	})
	uc.console.DisplayInsight(kpiInsight(v))
}

func (uc *DashboardUseCase) renderSegments(v *entity.SegmentView) {
	if v == nil {
		return
	}
	uc.console.DisplayBars("Profit by Segment", seriesBars(v.ProfitBySegment, money))

	table := uc.console.CreateTable()
	table.AddColumn("Segment")
	table.AddColumn("Category")
	table.AddColumn("Quantity")
	for _, sc := range v.QuantityBySegmentCategory {
		table.AddRow(sc.Segment, sc.Category, fmt.Sprintf("%.0f", sc.Quantity))
	}
	uc.console.Println(table.Render())
	uc.console.DisplayInsight(segmentInsight(v))
}

func (uc *DashboardUseCase) renderProducts(v *entity.ProductView) {
	if v == nil {
		return
	}
	uc.console.DisplayBars("Profit by Category", seriesBars(v.ProfitByCategory, money))
	uc.console.DisplayBars("Profit by Sub-Category", seriesBars(v.ProfitBySubCategory, money))
	uc.console.DisplayInsight(productInsight(v))
}

func (uc *DashboardUseCase) renderDiscounts(v *entity.DiscountView) {
	if v == nil {
		return
	}
	bins := make([]types.Bar, 0, len(v.Histogram.Bins))
	for _, b := range v.Histogram.Bins {
		bins = append(bins, types.Bar{Label: b.Label(), Value: float64(b.Count), Display: fmt.Sprintf("%d", b.Count)})
	}
	uc.console.DisplayBars("Discount (%) Distribution", bins)

	ranges := seriesBars(v.ProfitByDiscountRange, money)
	for i := range ranges {
		ranges[i].Label += "%"
	}
	uc.console.DisplayBars("Average Profit by Discount Range", ranges)

	uc.console.DisplayBars("Loss Risk", []types.Bar{
		{Label: "At risk", Value: float64(v.LossRisk.AtRisk), Display: fmt.Sprintf("%d", v.LossRisk.AtRisk)},
		{Label: "Safe", Value: float64(v.LossRisk.Safe), Display: fmt.Sprintf("%d", v.LossRisk.Safe)},
	})
	uc.console.DisplayInsight(discountInsight(v))
}

func (uc *DashboardUseCase) renderRegions(v *entity.RegionView) {
	if v == nil {
		return
	}
	uc.console.DisplayBars("Profit by Region", seriesBars(v.ProfitByRegion, money))

	table := uc.console.CreateTable()
	table.AddColumn("City")
	table.AddColumn("Sales")
	table.AddColumn("Profit")
	for _, c := range v.TopCities {
		table.AddRow(c.City, money(c.Sales), money(c.Profit))
	}
	uc.console.Println(table.Render())
	uc.console.DisplayInsight(regionInsight(v))
}

func (uc *DashboardUseCase) renderTrends(v *entity.TrendView) {
	if v == nil {
		return
	}
	uc.console.DisplayBars("Orders by Weekday", seriesBars(v.OrdersByWeekday, count))
	uc.console.DisplayInsight(trendInsight(v))
}

func (uc *DashboardUseCase) renderTopProducts(v *entity.TopProductView) {
	if v == nil {
		return
	}
	uc.console.DisplayBars("Top Products by Quantity", seriesBars(v.TopByQuantity, count))
	uc.console.DisplayBars("Worst Products by Profit", seriesBars(v.WorstByProfit, money))
	uc.console.DisplayInsight(topProductInsight(v))
}

func count(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func seriesBars(s entity.Series, format func(float64) string) []types.Bar {
	bars := make([]types.Bar, 0, s.Len())
	for _, p := range s.Pairs {
		bars = append(bars, types.Bar{Label: p.Key, Value: p.Value, Display: format(p.Value)})
	}
	return bars
}
