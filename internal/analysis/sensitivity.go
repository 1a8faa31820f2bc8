package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/model"
)

// RateSensitivity summarizes how much each rate component of a plan
// contributes to the total bill for a given profile. It answers "which rate
// matters most for this household" — the supply charge dominates low-usage
// profiles, the peak rate dominates peak-heavy ones.
type RateSensitivity struct {
	PlanID       string
	RetailerName string
	TotalCost    decimal.Decimal

	SupplyImpactPct float64
	UsageImpactPct  float64
	SolarImpactPct  float64

	PeakCost     decimal.Decimal
	ShoulderCost decimal.Decimal
	OffPeakCost  decimal.Decimal

	PeakImpactPct     float64
	ShoulderImpactPct float64
	OffPeakImpactPct  float64
}

// Sensitivity computes the component impact breakdown for one record and
// profile. Pure: derives everything from a single calculation.
func Sensitivity(r model.TariffRecord, p model.UsageProfile) (RateSensitivity, error) {
	bill, err := engine.BillAccurate{}.Calculate(r, p)
	if err != nil {
		return RateSensitivity{}, err
	}

	s := RateSensitivity{
		PlanID:       r.PlanID,
		RetailerName: r.RetailerName,
		TotalCost:    bill.TotalCost,
	}

	s.PeakCost = bucketCost(p.QuarterlyConsumptionKwh, p.PeakPercent, r.PeakRate)
	if r.ShoulderRate != nil {
		s.ShoulderCost = bucketCost(p.QuarterlyConsumptionKwh, p.ShoulderPercent, *r.ShoulderRate)
	}
	s.OffPeakCost = bucketCost(p.QuarterlyConsumptionKwh, p.OffPeakPercent, r.OffPeakRate)

	if bill.TotalCost.IsZero() {
		return s, nil
	}

	s.SupplyImpactPct = impactPct(bill.SupplyCharge, bill.TotalCost)
	s.UsageImpactPct = impactPct(bill.UsageCharge, bill.TotalCost)
	s.SolarImpactPct = impactPct(bill.SolarCredit, bill.TotalCost)
	s.PeakImpactPct = impactPct(s.PeakCost, bill.TotalCost)
	s.ShoulderImpactPct = impactPct(s.ShoulderCost, bill.TotalCost)
	s.OffPeakImpactPct = impactPct(s.OffPeakCost, bill.TotalCost)

	return s, nil
}

func bucketCost(consumptionKwh, percent, rateCents float64) decimal.Decimal {
	if rateCents <= 0 || percent <= 0 {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return decimal.NewFromFloat(consumptionKwh).
		Mul(decimal.NewFromFloat(percent)).Div(hundred).
		Mul(decimal.NewFromFloat(rateCents)).Div(hundred).
		Round(2)
}

func impactPct(part, total decimal.Decimal) float64 {
	pct, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
