package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/KrE80r/energy-front/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func baseRecord() model.TariffRecord {
	return model.TariffRecord{
		PlanID:            "TEST-1",
		RetailerName:      "Test Energy",
		PlanName:          "TOU Test",
		PeakRate:          40.0,
		ShoulderRate:      floatPtr(27.2),
		OffPeakRate:       27.2,
		DailySupplyCharge: 105.0,
	}
}

func baseProfile() model.UsageProfile {
	return model.UsageProfile{
		QuarterlyConsumptionKwh: 1365,
		PeakPercent:             75,
		ShoulderPercent:         8,
		OffPeakPercent:          17,
	}
}

func wantAmount(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if got.StringFixed(2) != want {
		t.Errorf("%s = %s, want %s", name, got.StringFixed(2), want)
	}
}

func TestCalculateBreakdown(t *testing.T) {
	bill, err := BillAccurate{}.Calculate(baseRecord(), baseProfile())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// 105c/day * 91 days = $95.55
	wantAmount(t, "SupplyCharge", bill.SupplyCharge, "95.55")
	// 1365 * (0.75*40 + 0.08*27.2 + 0.17*27.2) / 100 = 409.50 + 29.7024 + 63.1176
	wantAmount(t, "UsageCharge", bill.UsageCharge, "502.32")
	wantAmount(t, "MembershipFeeQuarterly", bill.MembershipFeeQuarterly, "0.00")
	wantAmount(t, "SolarCredit", bill.SolarCredit, "0.00")
	wantAmount(t, "TotalCost", bill.TotalCost, "597.87")

	wantAmount(t, "MonthlyCost", bill.MonthlyCost(), "199.29")
	wantAmount(t, "AnnualCost", bill.AnnualCost(), "2391.48")
}

func TestCalculateIsPure(t *testing.T) {
	r := baseRecord()
	p := baseProfile()

	first, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	second, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if !first.TotalCost.Equal(second.TotalCost) {
		t.Errorf("repeated calculation differs: %s vs %s",
			first.TotalCost, second.TotalCost)
	}
}

func TestCalculateMembershipFee(t *testing.T) {
	r := baseRecord()
	r.MembershipFee = floatPtr(99.0)

	bill, err := BillAccurate{}.Calculate(r, baseProfile())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	wantAmount(t, "MembershipFeeQuarterly", bill.MembershipFeeQuarterly, "24.75")
	wantAmount(t, "TotalCost", bill.TotalCost, "622.62")
}

func TestCalculateTwoRatePlan(t *testing.T) {
	r := baseRecord()
	r.ShoulderRate = nil

	bill, err := BillAccurate{}.Calculate(r, baseProfile())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// Shoulder consumption share contributes nothing without a shoulder rate.
	// 409.50 + 63.1176 = 472.62 rounded.
	wantAmount(t, "UsageCharge", bill.UsageCharge, "472.62")
}

func TestSolarVolumeSingleTier(t *testing.T) {
	r := baseRecord()
	r.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierVolume, RateCents: 5.0},
	}
	p := baseProfile()
	p.SolarExportKwh = 500

	bill, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// Unbounded tier: 500 kWh * 5c = $25.00, unchanged by daily proration.
	wantAmount(t, "SolarCredit", bill.SolarCredit, "25.00")
}

func TestSolarVolumeTierExhaustion(t *testing.T) {
	r := baseRecord()
	r.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierVolume, RateCents: 10.0, DailyLimitKwh: 10.0},
		{Kind: model.TierVolume, RateCents: 5.0},
	}
	p := baseProfile()
	p.SolarExportKwh = 1365 // 15 kWh/day

	bill, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// 10 kWh/day at 10c + 5 kWh/day at 5c = $1.25/day * 91 = $113.75
	wantAmount(t, "SolarCredit", bill.SolarCredit, "113.75")
}

func TestSolarVolumeUnderFirstTier(t *testing.T) {
	r := baseRecord()
	r.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierVolume, RateCents: 10.0, DailyLimitKwh: 10.0},
		{Kind: model.TierVolume, RateCents: 5.0},
	}
	p := baseProfile()
	p.SolarExportKwh = 455 // 5 kWh/day, inside tier 1

	bill, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	wantAmount(t, "SolarCredit", bill.SolarCredit, "45.50")
}

func TestSolarTimeOfUseWithWindowSplit(t *testing.T) {
	r := baseRecord()
	r.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierTimeOfUse, RateCents: 12.0, Window: "P"},
		{Kind: model.TierTimeOfUse, RateCents: 6.0, Window: "OP"},
	}
	p := baseProfile()
	p.SolarExportKwh = 300
	p.SolarExportByWindow = map[string]float64{"P": 100, "OP": 200}

	bill, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// 100*12c + 200*6c = $24.00
	wantAmount(t, "SolarCredit", bill.SolarCredit, "24.00")
}

func TestSolarTimeOfUseFallbackRate(t *testing.T) {
	r := baseRecord()
	r.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierTimeOfUse, RateCents: 12.0, Window: "P"},
		{Kind: model.TierTimeOfUse, RateCents: 6.0, Window: "OP"},
	}
	p := baseProfile()
	p.SolarExportKwh = 300 // no per-window split supplied

	bill, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// Whole export valued at the first declared tier's rate.
	wantAmount(t, "SolarCredit", bill.SolarCredit, "36.00")
}

func TestGuaranteedDiscountApplied(t *testing.T) {
	r := baseRecord()
	r.Discount = &model.DiscountTerms{
		Percent:                5.0,
		NoDiscountCost:         600,
		AllDiscountsCost:       570,
		GuaranteedDiscountCost: 570,
	}

	bill, err := BillAccurate{}.Calculate(r, baseProfile())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// 597.87 * 0.95 = 567.9765 -> 567.98
	wantAmount(t, "TotalCost", bill.TotalCost, "567.98")
	wantAmount(t, "DiscountSavings", bill.DiscountSavings, "29.89")
}

func TestConditionalDiscountIgnored(t *testing.T) {
	r := baseRecord()
	r.Discount = &model.DiscountTerms{
		Percent:                10.0,
		Conditional:            true,
		NoDiscountCost:         600,
		AllDiscountsCost:       540,
		GuaranteedDiscountCost: 540,
	}

	bill, err := BillAccurate{}.Calculate(r, baseProfile())
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	wantAmount(t, "TotalCost", bill.TotalCost, "597.87")
	if !bill.DiscountSavings.IsZero() {
		t.Errorf("DiscountSavings = %s, want 0", bill.DiscountSavings)
	}
}

func TestTotalFlooredAtZero(t *testing.T) {
	r := baseRecord()
	r.DailySupplyCharge = 0
	r.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierVolume, RateCents: 50.0},
	}
	p := baseProfile()
	p.QuarterlyConsumptionKwh = 10
	p.SolarExportKwh = 5000

	bill, err := BillAccurate{}.Calculate(r, p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if bill.TotalCost.IsNegative() || !bill.TotalCost.IsZero() {
		t.Errorf("TotalCost = %s, want 0.00", bill.TotalCost)
	}
	// The credit itself stays fully reported even when the total floors.
	wantAmount(t, "SolarCredit", bill.SolarCredit, "2500.00")
}

func TestUsageMonotonicInConsumption(t *testing.T) {
	r := baseRecord()
	low := baseProfile()
	high := baseProfile()
	high.QuarterlyConsumptionKwh = low.QuarterlyConsumptionKwh * 2

	lowBill, err := BillAccurate{}.Calculate(r, low)
	if err != nil {
		t.Fatalf("Calculate low: %v", err)
	}
	highBill, err := BillAccurate{}.Calculate(r, high)
	if err != nil {
		t.Fatalf("Calculate high: %v", err)
	}
	if !highBill.TotalCost.GreaterThan(lowBill.TotalCost) {
		t.Errorf("doubling consumption did not raise the bill: %s vs %s",
			lowBill.TotalCost, highBill.TotalCost)
	}
}

func TestUsageMonotonicInPeakShare(t *testing.T) {
	// With peak priced above off-peak, shifting share into peak can only
	// raise the bill.
	r := baseRecord()
	mild := baseProfile() // 75/8/17
	heavy := model.UsageProfile{
		QuarterlyConsumptionKwh: mild.QuarterlyConsumptionKwh,
		PeakPercent:             85,
		ShoulderPercent:         8,
		OffPeakPercent:          7,
	}

	mildBill, err := BillAccurate{}.Calculate(r, mild)
	if err != nil {
		t.Fatalf("Calculate mild: %v", err)
	}
	heavyBill, err := BillAccurate{}.Calculate(r, heavy)
	if err != nil {
		t.Fatalf("Calculate heavy: %v", err)
	}
	if !heavyBill.TotalCost.GreaterThan(mildBill.TotalCost) {
		t.Errorf("peak-heavier profile not more expensive: %s vs %s",
			mildBill.TotalCost, heavyBill.TotalCost)
	}
}

func TestCalculateRejectsInvalidProfile(t *testing.T) {
	p := baseProfile()
	p.PeakPercent = 90 // split now sums to 115

	_, err := BillAccurate{}.Calculate(baseRecord(), p)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Field != "profile" {
		t.Errorf("Field = %q, want profile", verr.Field)
	}
}

func TestCalculateRejectsIneligibleRecord(t *testing.T) {
	r := baseRecord()
	r.HasDemandCharge = true

	_, err := BillAccurate{}.Calculate(r, baseProfile())
	var ierr *IneligibleError
	if !errors.As(err, &ierr) {
		t.Fatalf("err = %v, want *IneligibleError", err)
	}
	if ierr.PlanID != "TEST-1" {
		t.Errorf("PlanID = %q, want TEST-1", ierr.PlanID)
	}
}

func TestZeroConsumptionStillPaysSupply(t *testing.T) {
	p := baseProfile()
	p.QuarterlyConsumptionKwh = 0

	bill, err := BillAccurate{}.Calculate(baseRecord(), p)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	wantAmount(t, "UsageCharge", bill.UsageCharge, "0.00")
	wantAmount(t, "TotalCost", bill.TotalCost, "95.55")
}
