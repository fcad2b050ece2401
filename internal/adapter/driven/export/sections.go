package export

import (
	"strconv"
	"strings"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

// section é uma tabela de um relatório pronta para exportação.
type section struct {
	tab     entity.Tab
	title   string
	header  []string
	keyCols int
	rows    []sectionRow
}

type sectionRow struct {
	keys   []string
	values []float64
}

func (s section) metrics() []string {
	return s.header[s.keyCols:]
}

// reportSections flattens the tabs of a report, in tab order, into exportable tables.
func reportSections(report *entity.Report) []section {
	var sections []section
	for _, tab := range report.Tabs {
		switch tab {
		case entity.TabKPIs:
			if v := report.KPIs; v != nil {
				sections = append(sections, section{
					tab: tab, title: "Totals", header: []string{"KPI", "Value"}, keyCols: 1,
					rows: []sectionRow{
						{keys: []string{"Total Sales"}, values: []float64{v.Totals.Sales}},
						{keys: []string{"Total Profit"}, values: []float64{v.Totals.Profit}},
						{keys: []string{"Total Loss"}, values: []float64{v.Totals.AbsLoss()}},
					},
				})
			}
		case entity.TabSegments:
			if v := report.Segments; v != nil {
				sections = append(sections, seriesSection(tab, "Profit by Segment", "Segment", v.ProfitBySegment))
				s := section{tab: tab, title: "Quantity by Segment and Category", header: []string{"Segment", "Category", "Quantity"}, keyCols: 2}
				for _, sc := range v.QuantityBySegmentCategory {
					s.rows = append(s.rows, sectionRow{keys: []string{sc.Segment, sc.Category}, values: []float64{sc.Quantity}})
				}
				sections = append(sections, s)
			}
		case entity.TabProducts:
			if v := report.Products; v != nil {
				sections = append(sections,
					seriesSection(tab, "Profit by Category", "Category", v.ProfitByCategory),
					seriesSection(tab, "Profit by Sub-Category", "Sub-Category", v.ProfitBySubCategory),
				)
			}
		case entity.TabDiscounts:
			if v := report.Discounts; v != nil {
				h := section{tab: tab, title: "Discount Distribution", header: []string{v.Histogram.Column, "Count"}, keyCols: 1}
				for _, b := range v.Histogram.Bins {
					h.rows = append(h.rows, sectionRow{keys: []string{b.Label()}, values: []float64{float64(b.Count)}})
				}
				sections = append(sections, h,
					seriesSection(tab, "Average Profit by Discount Range", "Discount Range (%)", v.ProfitByDiscountRange),
					section{
						tab: tab, title: "Loss Risk", header: []string{"Loss Risk", "Count"}, keyCols: 1,
						rows: []sectionRow{
							{keys: []string{"true"}, values: []float64{float64(v.LossRisk.AtRisk)}},
							{keys: []string{"false"}, values: []float64{float64(v.LossRisk.Safe)}},
						},
					},
				)
			}
		case entity.TabRegions:
			if v := report.Regions; v != nil {
				sections = append(sections, seriesSection(tab, "Profit by Region", "Region", v.ProfitByRegion))
				s := section{tab: tab, title: "Top Cities by Sales", header: []string{"City", "Sales", "Profit"}, keyCols: 1}
				for _, c := range v.TopCities {
					s.rows = append(s.rows, sectionRow{keys: []string{c.City}, values: []float64{c.Sales, c.Profit}})
				}
				sections = append(sections, s)
			}
		case entity.TabTrends:
			if v := report.Trends; v != nil {
				sections = append(sections, seriesSection(tab, "Orders by Weekday", "Order Day", v.OrdersByWeekday))
			}
		case entity.TabTopProducts:
			if v := report.TopProducts; v != nil {
				sections = append(sections,
					seriesSection(tab, "Top Products by Quantity", "Product Name", v.TopByQuantity),
					seriesSection(tab, "Worst Products by Profit", "Product Name", v.WorstByProfit),
				)
			}
		}
	}
	return sections
}

func seriesSection(tab entity.Tab, title, keyHeader string, s entity.Series) section {
	sec := section{tab: tab, title: title, header: []string{keyHeader, s.Metric}, keyCols: 1}
	for _, p := range s.Pairs {
		sec.rows = append(sec.rows, sectionRow{keys: []string{p.Key}, values: []float64{p.Value}})
	}
	return sec
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// text renders a section as aligned plain text for the PDF body.
func (s section) text() string {
	var b strings.Builder
	b.WriteString(strings.Join(s.header, " | "))
	b.WriteString("\n")
	for _, r := range s.rows {
		cells := append([]string{}, r.keys...)
		for _, v := range r.values {
			cells = append(cells, strconv.FormatFloat(v, 'f', 2, 64))
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
