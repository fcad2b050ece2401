package entity

import (
	"fmt"
	"time"

	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// Tab identifica uma aba do dashboard.
type Tab string

const (
	TabKPIs        Tab = "kpis"
	TabSegments    Tab = "segments"
	TabProducts    Tab = "products"
	TabDiscounts   Tab = "discounts"
	TabRegions     Tab = "regions"
	TabTrends      Tab = "trends"
	TabTopProducts Tab = "top-products"
)

// AllTabs is the dashboard tab order.
var AllTabs = []Tab{TabKPIs, TabSegments, TabProducts, TabDiscounts, TabRegions, TabTrends, TabTopProducts}

var tabTitles = map[Tab]string{
	TabKPIs:        "KPIs Overview",
	TabSegments:    "Customer Segments",
	TabProducts:    "Product Performance",
	TabDiscounts:   "Discount Analysis",
	TabRegions:     "Regional Insights",
	TabTrends:      "Time Trends",
	TabTopProducts: "Top Products",
}

// Title retorna o título exibido da aba.
func (t Tab) Title() string {
	if title, ok := tabTitles[t]; ok {
		return title
	}
	return string(t)
}

// ParseTabs converts tab names to Tabs; an empty list selects every tab.
func ParseTabs(names []string) ([]Tab, error) {
	if len(names) == 0 {
		return AllTabs, nil
	}
	tabs := make([]Tab, 0, len(names))
	seen := make(map[Tab]bool)
	for _, name := range names {
		tab := Tab(name)
		if _, ok := tabTitles[tab]; !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrUnknownTab, name)
		}
		if seen[tab] {
			continue
		}
		seen[tab] = true
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// KPIView is the "KPIs Overview" tab.
type KPIView struct {
	Totals Totals `json:"totals"`
}

// SegmentView is the "Customer Segments" tab.
type SegmentView struct {
	ProfitBySegment           Series            `json:"profit_by_segment"`
	QuantityBySegmentCategory []SegmentCategory `json:"quantity_by_segment_category"`
}

// ProductView is the "Product Performance" tab.
type ProductView struct {
	ProfitByCategory    Series `json:"profit_by_category"`
	ProfitBySubCategory Series `json:"profit_by_sub_category"`
}

// DiscountView is the "Discount Analysis" tab.
type DiscountView struct {
	Histogram             Histogram `json:"histogram"`
	ProfitByDiscountRange Series    `json:"profit_by_discount_range"`
	LossRisk              RiskSplit `json:"loss_risk"`
}

// RegionView is the "Regional Insights" tab.
type RegionView struct {
	ProfitByRegion Series       `json:"profit_by_region"`
	TopCities      []CityTotals `json:"top_cities"`
}

// TrendView is the "Time Trends" tab.
type TrendView struct {
	OrdersByWeekday Series `json:"orders_by_weekday"`
}

// TopProductView is the "Top Products" tab.
type TopProductView struct {
	TopByQuantity Series `json:"top_by_quantity"`
	WorstByProfit Series `json:"worst_by_profit"`
}

// Report contém todas as agregações calculadas para uma execução do dashboard.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`
	Records     int       `json:"records"`
	Tabs        []Tab     `json:"tabs"`

	KPIs        *KPIView        `json:"kpis,omitempty"`
	Segments    *SegmentView    `json:"segments,omitempty"`
	Products    *ProductView    `json:"products,omitempty"`
	Discounts   *DiscountView   `json:"discounts,omitempty"`
	Regions     *RegionView     `json:"regions,omitempty"`
	Trends      *TrendView      `json:"trends,omitempty"`
	TopProducts *TopProductView `json:"top_products,omitempty"`
}

// HasTab informa se a aba foi calculada para este relatório.
func (r *Report) HasTab(tab Tab) bool {
	for _, t := range r.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}
