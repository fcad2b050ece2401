package aggregation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/diillson/superstore-dashboard-go/internal/domain/entity"
)

// groupSum acumula somas e contagens por chave. As somas usam decimal para que o
// resultado não dependa da ordem dos registros.
type groupSum struct {
	keys   []string
	sums   map[string]decimal.Decimal
	counts map[string]int
}

func newGroupSum() *groupSum {
	return &groupSum{
		sums:   make(map[string]decimal.Decimal),
		counts: make(map[string]int),
	}
}

func (g *groupSum) add(key string, v float64) {
	if _, ok := g.counts[key]; !ok {
		g.keys = append(g.keys, key)
		g.sums[key] = decimal.Zero
	}
	g.counts[key]++
	g.sums[key] = g.sums[key].Add(toDecimal(v))
}

func (g *groupSum) sumPairs() []entity.Pair {
	pairs := make([]entity.Pair, 0, len(g.keys))
	for _, k := range g.keys {
		pairs = append(pairs, entity.Pair{Key: k, Value: g.sums[k].InexactFloat64()})
	}
	return pairs
}

func (g *groupSum) meanPairs() []entity.Pair {
	pairs := make([]entity.Pair, 0, len(g.keys))
	for _, k := range g.keys {
		mean := g.sums[k].Div(decimal.NewFromInt(int64(g.counts[k])))
		pairs = append(pairs, entity.Pair{Key: k, Value: mean.InexactFloat64()})
	}
	return pairs
}

// toDecimal ignora valores não finitos; NewFromFloat entra em pânico com eles.
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func sortAscending(pairs []entity.Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value < pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})
}

func sortDescending(pairs []entity.Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})
}

func head(pairs []entity.Pair, n int) []entity.Pair {
	if n < len(pairs) {
		return pairs[:n]
	}
	return pairs
}
