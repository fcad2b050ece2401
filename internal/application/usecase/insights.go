package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

var printer = message.NewPrinter(language.English)

// money formata valores monetários com separador de milhar, sem centavos.
func money(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.0f", -v)
	}
	return printer.Sprintf("$%.0f", v)
}

// Os textos abaixo são gerados a partir dos dados de cada aba.

func kpiInsight(v *entity.KPIView) string {
	t := v.Totals
	if t.Profit <= 0 {
		return fmt.Sprintf("Losses of %s outweigh every profitable order: net profit is %s on %s of sales. Pricing and discounts need urgent review.",
			money(t.AbsLoss()), money(t.Profit), money(t.Sales))
	}
	share := t.AbsLoss() / t.Profit * 100
	return printer.Sprintf("Sales reach %s, but losses (%s) offset %.0f%% of the total profit (%s).",
		money(t.Sales), money(t.AbsLoss()), share, money(t.Profit))
}

func segmentInsight(v *entity.SegmentView) string {
	pairs := v.ProfitBySegment.Pairs
	if len(pairs) == 0 {
		return "No segment data available."
	}
	best := pairs[len(pairs)-1]

	quantity := make(map[string]float64)
	for _, sc := range v.QuantityBySegmentCategory {
		quantity[sc.Segment] += sc.Quantity
	}
	busiest, most := "", -1.0
	for _, p := range pairs {
		if q := quantity[p.Key]; q > most {
			busiest, most = p.Key, q
		}
	}

	if busiest == best.Key {
		return printer.Sprintf("Prioritize the %s segment: it generates the highest profit (%s) and buys the most units (%.0f).",
			best.Key, money(best.Value), most)
	}
	return printer.Sprintf("The %s segment generates the highest profit (%s), while %s buys the most units (%.0f).",
		best.Key, money(best.Value), busiest, most)
}

func productInsight(v *entity.ProductView) string {
	pairs := v.ProfitBySubCategory.Pairs
	if len(pairs) == 0 {
		return "No sub-category data available."
	}

	var best, worst []string
	for i := len(pairs) - 1; i >= 0 && len(best) < 3; i-- {
		if pairs[i].Value > 0 {
			best = append(best, pairs[i].Key)
		}
	}
	for i := 0; i < len(pairs) && len(worst) < 3; i++ {
		if pairs[i].Value < 0 {
			worst = append(worst, pairs[i].Key)
		}
	}

	switch {
	case len(best) > 0 && len(worst) > 0:
		return fmt.Sprintf("Focus on profitable sub-categories like %s. Reassess %s, which run at a loss.",
			strings.Join(best, ", "), strings.Join(worst, ", "))
	case len(worst) > 0:
		return fmt.Sprintf("Every sub-category loses money; the worst are %s.", strings.Join(worst, ", "))
	default:
		return fmt.Sprintf("No sub-category runs at a loss; the most profitable are %s.", strings.Join(best, ", "))
	}
}

func discountInsight(v *entity.DiscountView) string {
	if v.LossRisk.Total() == 0 {
		return "No orders to analyse."
	}
	text := printer.Sprintf("%.1f%% of orders have a discount above their profit margin.", v.LossRisk.AtRiskShare())

	pairs := v.ProfitByDiscountRange.Pairs
	if len(pairs) == 0 {
		return text
	}
	worst := pairs[0]
	for _, p := range pairs[1:] {
		if p.Value < worst.Value {
			worst = p
		}
	}
	if worst.Value < 0 {
		text += fmt.Sprintf(" The %s%% discount tier is the most damaging, averaging %s per order.", worst.Key, money(worst.Value))
	}
	return text
}

func regionInsight(v *entity.RegionView) string {
	pairs := v.ProfitByRegion.Pairs
	if len(pairs) == 0 {
		return "No regional data available."
	}
	best, worst := pairs[len(pairs)-1], pairs[0]
	text := fmt.Sprintf("%s is the most profitable region (%s); %s is the weakest (%s).",
		best.Key, money(best.Value), worst.Key, money(worst.Value))
	if len(v.TopCities) > 0 {
		text += fmt.Sprintf(" %s leads city sales with %s.", v.TopCities[0].City, money(v.TopCities[0].Sales))
	}
	return text
}

func trendInsight(v *entity.TrendView) string {
	var busiest entity.Pair
	for _, p := range v.OrdersByWeekday.Pairs {
		if p.Value > busiest.Value {
			busiest = p
		}
	}
	if busiest.Value == 0 {
		return "No orders carry a weekday."
	}
	return printer.Sprintf("%s is the busiest day of the week with %.0f orders.", busiest.Key, busiest.Value)
}

func topProductInsight(v *entity.TopProductView) string {
	var parts []string
	if top := v.TopByQuantity.Pairs; len(top) > 0 {
		parts = append(parts, printer.Sprintf("%s is the best-selling item (%.0f units).", top[0].Key, top[0].Value))
	}
	if worst := v.WorstByProfit.Pairs; len(worst) > 0 && worst[0].Value < 0 {
		parts = append(parts, fmt.Sprintf("%s drives the largest loss (%s) and should be reviewed.", worst[0].Key, money(worst[0].Value)))
	}
	if len(parts) == 0 {
		return "No product data available."
	}
	return strings.Join(parts, " ")
}
