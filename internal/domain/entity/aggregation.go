package entity

import (
	"fmt"

	"github.com/diillson/superstore-dashboard-go/internal/shared/types"
)

// Pair is one category -> value entry of an aggregation.
type Pair struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Series is an ordered aggregation result (category -> value).
type Series struct {
	Name   string `json:"name"`
	Metric string `json:"metric"`
	Pairs  []Pair `json:"pairs"`
}

// Value returns the value stored for key, or ErrEmptyGroup when no record fell in that group.
func (s Series) Value(key string) (float64, error) {
	for _, p := range s.Pairs {
		if p.Key == key {
			return p.Value, nil
		}
	}
	return 0, fmt.Errorf("%s: %w: %q", s.Name, types.ErrEmptyGroup, key)
}

// Keys retorna as chaves na ordem da série.
func (s Series) Keys() []string {
	keys := make([]string, len(s.Pairs))
	for i, p := range s.Pairs {
		keys[i] = p.Key
	}
	return keys
}

// Len retorna o número de grupos.
func (s Series) Len() int {
	return len(s.Pairs)
}

// Totals holds the KPI overview figures. Loss is the signed sum of negative profits.
type Totals struct {
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
	Loss   float64 `json:"loss"`
}

// AbsLoss retorna a perda total como valor positivo.
func (t Totals) AbsLoss() float64 {
	if t.Loss < 0 {
		return -t.Loss
	}
	return t.Loss
}

// SegmentCategory is the quantity sold for one (Segment, Category) group.
type SegmentCategory struct {
	Segment  string  `json:"segment"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
}

// CityTotals is the sales and profit summed for one city.
type CityTotals struct {
	City   string  `json:"city"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

// Bin is one equal-width histogram bucket, [Lower, Upper) except for the last one.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Label formata o intervalo do bin.
func (b Bin) Label() string {
	return fmt.Sprintf("%.1f-%.1f", b.Lower, b.Upper)
}

// Histogram is the binned distribution of a numeric column.
type Histogram struct {
	Column string `json:"column"`
	Bins   []Bin  `json:"bins"`
}

// Total soma as contagens de todos os bins.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// RiskSplit counts records by Loss Risk. Both sides are always present.
type RiskSplit struct {
	AtRisk int `json:"at_risk"`
	Safe   int `json:"safe"`
}

// Count retorna a contagem para o valor de Loss Risk informado.
func (r RiskSplit) Count(lossRisk bool) int {
	if lossRisk {
		return r.AtRisk
	}
	return r.Safe
}

// Total retorna o número de registros contados.
func (r RiskSplit) Total() int {
	return r.AtRisk + r.Safe
}

// AtRiskShare is the at-risk percentage, 0 for an empty split.
func (r RiskSplit) AtRiskShare() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.AtRisk) / float64(r.Total()) * 100
}
