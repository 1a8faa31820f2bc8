package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KrE80r/energy-front/internal/analysis"
	"github.com/KrE80r/energy-front/internal/data"
	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/model"
)

// Demo:
// - Build a small in-memory tariff set (no JSON file needed)
// - Rank it for a built-in persona to show how the pieces fit together
// - Optionally write the ranking CSV
func main() {
	personaName := flag.String("persona", "Standard Commuter", "Built-in persona to rank for")
	outCSV := flag.String("out", "", "Optional path to write ranking CSV (e.g. results/demo.csv)")
	flag.Parse()

	persona, ok := data.PersonaByName(*personaName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown persona %q; available:\n", *personaName)
		for _, p := range data.Personas() {
			fmt.Fprintf(os.Stderr, "  %s (%s)\n", p.Name, p.Group)
		}
		os.Exit(2)
	}

	records := samplePlans()

	ranked, err := engine.Rank(records, persona.Profile)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Persona: %s — %s\n", persona.Name, persona.Description)
	fmt.Printf("Usage: %.0f kWh/quarter (peak %.0f%% / shoulder %.0f%% / off-peak %.0f%%), export %.0f kWh\n\n",
		persona.Profile.QuarterlyConsumptionKwh,
		persona.Profile.PeakPercent,
		persona.Profile.ShoulderPercent,
		persona.Profile.OffPeakPercent,
		persona.Profile.SolarExportKwh,
	)

	for i, b := range ranked {
		fmt.Printf("%d. %-16s %-24s supply=%7s usage=%7s solar=%7s total=%8s\n",
			i+1,
			b.Record.RetailerName,
			b.Record.PlanName,
			b.SupplyCharge.StringFixed(2),
			b.UsageCharge.StringFixed(2),
			b.SolarCredit.StringFixed(2),
			b.TotalCost.StringFixed(2),
		)
	}
	fmt.Printf("\n%d of %d plans eligible (demand-charge and incomplete plans excluded)\n",
		len(ranked), len(records))

	if *outCSV != "" {
		if err := analysis.WriteRankingCSV(*outCSV, ranked); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote CSV: %s\n", *outCSV)
	}
}

func samplePlans() []model.TariffRecord {
	shoulder := func(v float64) *float64 { return &v }

	return []model.TariffRecord{
		{
			PlanID:            "DEMO-SAVER-1",
			RetailerName:      "Demo Energy",
			PlanName:          "TOU Saver",
			PeakRate:          40.0,
			ShoulderRate:      shoulder(27.2),
			OffPeakRate:       27.2,
			DailySupplyCharge: 105.0,
			SolarCreditTiers: []model.SolarTier{
				{Kind: model.TierVolume, RateCents: 10.0, DailyLimitKwh: 10.0},
				{Kind: model.TierVolume, RateCents: 5.0},
			},
		},
		{
			PlanID:            "DEMO-BASIC-1",
			RetailerName:      "Budget Power",
			PlanName:          "Two Rate Basic",
			PeakRate:          44.5,
			OffPeakRate:       24.8,
			DailySupplyCharge: 92.0,
			SolarCreditTiers: []model.SolarTier{
				{Kind: model.TierVolume, RateCents: 6.0},
			},
		},
		{
			PlanID:            "DEMO-MEMBER-1",
			RetailerName:      "Club Electric",
			PlanName:          "Member Rewards",
			PeakRate:          38.9,
			ShoulderRate:      shoulder(25.0),
			OffPeakRate:       22.0,
			DailySupplyCharge: 118.0,
			MembershipFee:     shoulder(99.0),
			Discount: &model.DiscountTerms{
				Percent:                5.0,
				NoDiscountCost:         600.0,
				AllDiscountsCost:       570.0,
				GuaranteedDiscountCost: 570.0,
			},
		},
		{
			// Demand-charge plan: always excluded from ranking.
			PlanID:            "DEMO-DEMAND-1",
			RetailerName:      "Peak Grid Co",
			PlanName:          "Demand Flex",
			PeakRate:          30.0,
			ShoulderRate:      shoulder(20.0),
			OffPeakRate:       15.0,
			DailySupplyCharge: 80.0,
			HasDemandCharge:   true,
		},
	}
}
