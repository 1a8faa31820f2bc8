package engine

import (
	"github.com/shopspring/decimal"

	"github.com/KrE80r/energy-front/internal/model"
)

var (
	centsPerDollar = decimal.NewFromInt(100)
	oneHundred     = decimal.NewFromInt(100)
	quarterDays    = decimal.NewFromInt(model.QuarterDays)
)

// Formula is a named billing algorithm. The name is part of the contract:
// a formula change ships as a new named implementation, never a silent
// overwrite, so historical comparisons stay reproducible.
type Formula interface {
	Name() string
	Calculate(r model.TariffRecord, p model.UsageProfile) (model.BillBreakdown, error)
}

// BillAccurate is the current billing formula, verified against real bills:
//
//	supply charge + usage charge + membership fee - solar credit
//
// discounted by the guaranteed percentage only, floored at zero. Rates are
// GST-inclusive so no tax step exists.
type BillAccurate struct{}

func (BillAccurate) Name() string { return "bill-accurate-v2" }

// Calculate produces a quarterly cost breakdown for one (record, profile)
// pair. It is a pure function: identical inputs always produce identical
// output, and neither input is mutated.
func (f BillAccurate) Calculate(r model.TariffRecord, p model.UsageProfile) (model.BillBreakdown, error) {
	if err := p.Validate(); err != nil {
		return model.BillBreakdown{}, &ValidationError{Field: "profile", Reason: err}
	}
	if err := r.Validate(); err != nil {
		return model.BillBreakdown{}, &ValidationError{Field: "record", Reason: err}
	}
	if reason := eligibleReason(r); reason != "" {
		return model.BillBreakdown{}, &IneligibleError{PlanID: r.PlanID, Reason: reason}
	}

	supply := supplyCharge(r.DailySupplyCharge)
	membership := membershipFeeQuarterly(r.MembershipFee)

	// Net grid consumption is the profile figure used directly: bills
	// report usage already net of self-consumed solar, so there is nothing
	// to subtract here.
	usage := usageCharge(r, p)

	solar := solarCredit(r.SolarCreditTiers, p)

	subtotal := supply.Add(usage).Add(membership).Sub(solar)

	savings := decimal.Zero
	if c := ClassifyDiscount(r); c.Guaranteed {
		multiplier := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(c.GuaranteedPercent).Div(oneHundred))
		discounted := subtotal.Mul(multiplier).Round(2)
		savings = subtotal.Sub(discounted)
		subtotal = discounted
	}

	// Negative bills are floored rather than carried as credit; the engine
	// does not model bill credit rollover.
	total := subtotal
	if total.IsNegative() {
		total = decimal.Zero
	}

	return model.BillBreakdown{
		SupplyCharge:           supply,
		UsageCharge:            usage,
		MembershipFeeQuarterly: membership,
		SolarCredit:            solar,
		DiscountSavings:        savings,
		TotalCost:              total,
		Record:                 r,
		Profile:                p,
	}, nil
}

// supplyCharge converts a daily supply rate in cents to a quarterly charge
// in dollars.
func supplyCharge(dailyRateCents float64) decimal.Decimal {
	return decimal.NewFromFloat(dailyRateCents).
		Mul(quarterDays).
		Div(centsPerDollar).
		Round(2)
}

// membershipFeeQuarterly converts an annual membership fee to its quarterly
// share, zero when the plan has none.
func membershipFeeQuarterly(annual *float64) decimal.Decimal {
	if annual == nil || *annual <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*annual).Div(decimal.NewFromInt(4)).Round(2)
}

// usageCharge sums the per-bucket TOU charges. A bucket contributes nothing
// when its rate is absent or its consumption share is zero.
func usageCharge(r model.TariffRecord, p model.UsageProfile) decimal.Decimal {
	consumption := decimal.NewFromFloat(p.QuarterlyConsumptionKwh)

	total := decimal.Zero
	total = total.Add(bucketCharge(consumption, p.PeakPercent, r.PeakRate))
	if r.ShoulderRate != nil {
		total = total.Add(bucketCharge(consumption, p.ShoulderPercent, *r.ShoulderRate))
	}
	total = total.Add(bucketCharge(consumption, p.OffPeakPercent, r.OffPeakRate))

	return total.Round(2)
}

func bucketCharge(consumption decimal.Decimal, percent, rateCents float64) decimal.Decimal {
	if rateCents <= 0 || percent <= 0 {
		return decimal.Zero
	}
	bucketKwh := consumption.Mul(decimal.NewFromFloat(percent)).Div(oneHundred)
	return bucketKwh.Mul(decimal.NewFromFloat(rateCents)).Div(centsPerDollar)
}

// solarCredit values the quarter's export against the plan's feed-in
// schedule, in dollars.
//
// Volume tiers: the quarterly export is converted to a daily average, the
// tiers are walked in declared order consuming each tier's daily allowance
// (an unbounded last tier absorbs the remainder), and the daily credit is
// scaled back to the quarter.
//
// Time-of-use tiers carry no daily proration. When the profile supplies
// per-window export splits each split is valued at its window's rate;
// otherwise the whole export is valued at the first declared tier's rate,
// which retailers list as the primary one.
func solarCredit(tiers []model.SolarTier, p model.UsageProfile) decimal.Decimal {
	if p.SolarExportKwh <= 0 || len(tiers) == 0 {
		return decimal.Zero
	}

	var volume, timed []model.SolarTier
	for _, t := range tiers {
		switch t.Kind {
		case model.TierVolume:
			volume = append(volume, t)
		case model.TierTimeOfUse:
			timed = append(timed, t)
		}
	}

	// A schedule mixes kinds only on malformed data; volume tiers win so the
	// export is not valued twice.
	if len(volume) > 0 {
		return volumeTierCredit(volume, p.SolarExportKwh)
	}
	return timeOfUseCredit(timed, p)
}

func volumeTierCredit(tiers []model.SolarTier, exportKwh float64) decimal.Decimal {
	dailyExport := decimal.NewFromFloat(exportKwh).Div(quarterDays)

	remaining := dailyExport
	dailyCredit := decimal.Zero
	for _, tier := range tiers {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		rate := decimal.NewFromFloat(tier.RateCents)

		portion := remaining
		if !tier.Unbounded() {
			limit := decimal.NewFromFloat(tier.DailyLimitKwh)
			if portion.GreaterThan(limit) {
				portion = limit
			}
		}
		dailyCredit = dailyCredit.Add(portion.Mul(rate).Div(centsPerDollar))
		remaining = remaining.Sub(portion)
	}

	return dailyCredit.Mul(quarterDays).Round(2)
}

func timeOfUseCredit(tiers []model.SolarTier, p model.UsageProfile) decimal.Decimal {
	if len(tiers) == 0 {
		return decimal.Zero
	}

	if len(p.SolarExportByWindow) > 0 {
		byWindow := make(map[string]float64, len(tiers))
		for _, t := range tiers {
			byWindow[t.Window] = t.RateCents
		}
		credit := decimal.Zero
		for window, kwh := range p.SolarExportByWindow {
			rate, ok := byWindow[window]
			if !ok || kwh <= 0 {
				continue
			}
			credit = credit.Add(
				decimal.NewFromFloat(kwh).Mul(decimal.NewFromFloat(rate)).Div(centsPerDollar))
		}
		return credit.Round(2)
	}

	// No split supplied: fall back to the first declared tier's rate.
	rate := decimal.NewFromFloat(tiers[0].RateCents)
	return decimal.NewFromFloat(p.SolarExportKwh).Mul(rate).Div(centsPerDollar).Round(2)
}
