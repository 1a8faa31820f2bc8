package analysis

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/KrE80r/energy-front/internal/model"
)

// MarketSummary is a profile-level summary of what the loaded market offers.
// It intentionally does not depend on any single plan; it includes cost
// distribution stats and the quarterly savings available by switching from
// the median-priced plan to the cheapest.
type MarketSummary struct {
	Count int

	MinCost    decimal.Decimal
	MaxCost    decimal.Decimal
	MeanCost   decimal.Decimal
	MedianCost decimal.Decimal
	P05Cost    decimal.Decimal
	P95Cost    decimal.Decimal

	SpreadP95P05 decimal.Decimal

	// SavingsVsMedian is median minus cheapest: the quarterly amount a
	// typical household leaves on the table by not shopping around.
	SavingsVsMedian decimal.Decimal
}

// Summarize computes market-wide cost stats from an already-ranked result
// (cheapest first). Empty input yields a zero summary.
func Summarize(ranked []model.BillBreakdown) MarketSummary {
	s := MarketSummary{}
	if len(ranked) == 0 {
		return s
	}
	s.Count = len(ranked)

	vals := make([]float64, 0, len(ranked))
	sum := 0.0
	for _, b := range ranked {
		v, _ := b.TotalCost.Float64()
		vals = append(vals, v)
		sum += v
	}
	// ranked is sorted ascending by total, so vals already is too.

	s.MinCost = ranked[0].TotalCost
	s.MaxCost = ranked[len(ranked)-1].TotalCost
	s.MeanCost = decimal.NewFromFloat(sum / float64(len(vals))).Round(2)
	s.MedianCost = decimal.NewFromFloat(percentileSorted(vals, 0.5)).Round(2)
	s.P05Cost = decimal.NewFromFloat(percentileSorted(vals, 0.05)).Round(2)
	s.P95Cost = decimal.NewFromFloat(percentileSorted(vals, 0.95)).Round(2)
	s.SpreadP95P05 = s.P95Cost.Sub(s.P05Cost)
	s.SavingsVsMedian = s.MedianCost.Sub(s.MinCost)
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
