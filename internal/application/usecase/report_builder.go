package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/superstore-dashboard-go/internal/domain/aggregation"
	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

// ReportOptions parametriza o cálculo das abas.
type ReportOptions struct {
	Tabs   []entity.Tab
	TopN   int
	Bins   int
	Source string
}

// ReportBuilder computes the aggregation catalog for the selected tabs.
type ReportBuilder struct {
	now   func() time.Time
	newID func() string
}

// NewReportBuilder cria um ReportBuilder com relógio e gerador de IDs reais.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{now: time.Now, newID: uuid.NewString}
}

// Build runs every selected tab concurrently over the (immutable) enriched table.
// The first failing aggregation cancels the others and is returned.
func (b *ReportBuilder) Build(ctx context.Context, table *entity.Table, opts ReportOptions) (*entity.Report, error) {
	tabs := opts.Tabs
	if len(tabs) == 0 {
		tabs = entity.AllTabs
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = aggregation.DefaultTopN
	}
	bins := opts.Bins
	if bins <= 0 {
		bins = aggregation.DefaultHistogramBins
	}

	report := &entity.Report{
		ID:          b.newID(),
		GeneratedAt: b.now(),
		Source:      opts.Source,
		Records:     table.Len(),
		Tabs:        tabs,
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, tab := range tabs {
		tab := tab
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Cada aba escreve apenas no seu próprio campo do relatório.
			if err := buildTab(report, tab, table, topN, bins); err != nil {
				return fmt.Errorf("building tab %s: %w", tab, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

func buildTab(report *entity.Report, tab entity.Tab, t *entity.Table, topN, bins int) error {
	switch tab {
	case entity.TabKPIs:
		totals, err := aggregation.Totals(t)
		if err != nil {
			return err
		}
		report.KPIs = &entity.KPIView{Totals: totals}

	case entity.TabSegments:
		profit, err := aggregation.ProfitBySegment(t)
		if err != nil {
			return err
		}
		quantity, err := aggregation.QuantityBySegmentCategory(t)
		if err != nil {
			return err
		}
		report.Segments = &entity.SegmentView{ProfitBySegment: profit, QuantityBySegmentCategory: quantity}

	case entity.TabProducts:
		byCategory, err := aggregation.ProfitByCategory(t)
		if err != nil {
			return err
		}
		bySub, err := aggregation.ProfitBySubCategory(t)
		if err != nil {
			return err
		}
		report.Products = &entity.ProductView{ProfitByCategory: byCategory, ProfitBySubCategory: bySub}

	case entity.TabDiscounts:
		hist, err := aggregation.DiscountHistogram(t, bins)
		if err != nil {
			return err
		}
		byRange, err := aggregation.ProfitByDiscountRange(t)
		if err != nil {
			return err
		}
		risk, err := aggregation.LossRiskSplit(t)
		if err != nil {
			return err
		}
		report.Discounts = &entity.DiscountView{Histogram: hist, ProfitByDiscountRange: byRange, LossRisk: risk}

	case entity.TabRegions:
		byRegion, err := aggregation.ProfitByRegion(t)
		if err != nil {
			return err
		}
		cities, err := aggregation.TopCitiesBySales(t, topN)
		if err != nil {
			return err
		}
		report.Regions = &entity.RegionView{ProfitByRegion: byRegion, TopCities: cities}

	case entity.TabTrends:
		weekdays, err := aggregation.OrdersByWeekday(t)
		if err != nil {
			return err
		}
		report.Trends = &entity.TrendView{OrdersByWeekday: weekdays}

	case entity.TabTopProducts:
		top, err := aggregation.TopProductsByQuantity(t, topN)
		if err != nil {
			return err
		}
		worst, err := aggregation.WorstProductsByProfit(t, topN)
		if err != nil {
			return err
		}
		report.TopProducts = &entity.TopProductView{TopByQuantity: top, WorstByProfit: worst}

	default:
		return fmt.Errorf("no aggregations registered for tab %q", tab)
	}
	return nil
}
