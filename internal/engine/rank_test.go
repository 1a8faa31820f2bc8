package engine

import (
	"errors"
	"testing"

	"github.com/KrE80r/energy-front/internal/model"
)

func recordWithRates(id string, peak, offPeak, supply float64) model.TariffRecord {
	return model.TariffRecord{
		PlanID:            id,
		RetailerName:      "Retailer " + id,
		PlanName:          "Plan " + id,
		PeakRate:          peak,
		OffPeakRate:       offPeak,
		DailySupplyCharge: supply,
	}
}

func TestRankOrdersCheapestFirst(t *testing.T) {
	records := []model.TariffRecord{
		recordWithRates("EXPENSIVE", 50, 35, 130),
		recordWithRates("CHEAP", 30, 20, 80),
		recordWithRates("MIDDLE", 40, 28, 100),
	}

	ranked, err := Rank(records, baseProfile())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	want := []string{"CHEAP", "MIDDLE", "EXPENSIVE"}
	for i, id := range want {
		if ranked[i].Record.PlanID != id {
			t.Errorf("rank %d = %s, want %s", i+1, ranked[i].Record.PlanID, id)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].TotalCost.LessThan(ranked[i-1].TotalCost) {
			t.Errorf("ranking not ascending at %d", i)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	// Identical pricing: input order must survive the sort.
	records := []model.TariffRecord{
		recordWithRates("FIRST", 40, 27, 100),
		recordWithRates("SECOND", 40, 27, 100),
		recordWithRates("THIRD", 40, 27, 100),
	}

	ranked, err := Rank(records, baseProfile())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	want := []string{"FIRST", "SECOND", "THIRD"}
	for i, id := range want {
		if ranked[i].Record.PlanID != id {
			t.Errorf("rank %d = %s, want %s", i+1, ranked[i].Record.PlanID, id)
		}
	}
}

func TestRankSkipsIneligible(t *testing.T) {
	demand := recordWithRates("DEMAND", 30, 20, 80)
	demand.HasDemandCharge = true
	noPeak := recordWithRates("NOPEAK", 0, 20, 80)

	records := []model.TariffRecord{
		demand,
		recordWithRates("OK", 40, 27, 100),
		noPeak,
	}

	ranked, err := Rank(records, baseProfile())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Record.PlanID != "OK" {
		t.Fatalf("ranked = %+v, want only OK", ranked)
	}
}

func TestRankIsolatesBadRecords(t *testing.T) {
	// A record that passes eligibility but fails record validation must be
	// dropped without aborting the rest.
	bad := recordWithRates("BAD", 40, 27, 100)
	bad.SolarCreditTiers = []model.SolarTier{
		{Kind: model.TierVolume, RateCents: 5}, // unbounded, not last
		{Kind: model.TierVolume, RateCents: 10, DailyLimitKwh: 10},
	}

	records := []model.TariffRecord{
		recordWithRates("GOOD-1", 40, 27, 100),
		bad,
		recordWithRates("GOOD-2", 35, 25, 90),
	}

	ranked, err := Rank(records, baseProfile())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("len = %d, want 2", len(ranked))
	}
	for _, b := range ranked {
		if b.Record.PlanID == "BAD" {
			t.Error("malformed record survived ranking")
		}
	}
}

func TestRankRejectsInvalidProfile(t *testing.T) {
	p := baseProfile()
	p.QuarterlyConsumptionKwh = -1

	_, err := Rank([]model.TariffRecord{baseRecord()}, p)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestRankEmptyInput(t *testing.T) {
	ranked, err := Rank(nil, baseProfile())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("len = %d, want 0", len(ranked))
	}
}
