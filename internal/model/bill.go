package model

import "github.com/shopspring/decimal"

// QuarterDays is the billing-quarter convention used throughout: every
// quarterly figure assumes a 91-day quarter.
const QuarterDays = 91

// BillBreakdown is the engine's output for one (record, profile) pair.
// All amounts are dollars, rounded to cents, and non-negative. Created
// fresh per calculation; never persisted or mutated.
type BillBreakdown struct {
	SupplyCharge           decimal.Decimal
	UsageCharge            decimal.Decimal
	MembershipFeeQuarterly decimal.Decimal
	SolarCredit            decimal.Decimal

	// DiscountSavings is the amount removed by a guaranteed discount.
	// Conditional discounts are never applied, so this is zero unless the
	// discount classified as guaranteed.
	DiscountSavings decimal.Decimal

	TotalCost decimal.Decimal

	// Originating inputs, kept for traceability.
	Record  TariffRecord
	Profile UsageProfile
}

// MonthlyCost is TotalCost / 3, a presentation convenience.
func (b BillBreakdown) MonthlyCost() decimal.Decimal {
	return b.TotalCost.Div(decimal.NewFromInt(3)).Round(2)
}

// AnnualCost is TotalCost * 4.
func (b BillBreakdown) AnnualCost() decimal.Decimal {
	return b.TotalCost.Mul(decimal.NewFromInt(4)).Round(2)
}
