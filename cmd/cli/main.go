package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KrE80r/energy-front/internal/analysis"
	"github.com/KrE80r/energy-front/internal/config"
	"github.com/KrE80r/energy-front/internal/data"
	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "rank":
		cmdRank(os.Args[2:])
	case "calculate":
		cmdCalculate(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	case "personas":
		cmdPersonas(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli rank --plans all_energy_plans.json --persona 'Standard Commuter' [--out results/ranking.csv]")
	fmt.Println("  cli rank --plans all_energy_plans.json --consumption 1365 --peak 75 --shoulder 8 --offpeak 17 [--export 0]")
	fmt.Println("  cli calculate --plans all_energy_plans.json --plan AGL123456MRE1 --consumption 1365 --peak 75 --shoulder 8 --offpeak 17")
	fmt.Println("  cli sensitivity --plans all_energy_plans.json --plan AGL123456MRE1 --persona 'Standard WFH'")
	fmt.Println("  cli personas --plans all_energy_plans.json [--out results/sweep.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - amounts are quarterly dollars for a 91-day quarter, rates GST-inclusive")
	fmt.Println("  - consumption is net grid draw from a bill; do not add self-consumed solar back in")
}

type profileFlags struct {
	persona     *string
	consumption *float64
	peak        *float64
	shoulder    *float64
	offPeak     *float64
	export      *float64
}

func addProfileFlags(fs *flag.FlagSet) profileFlags {
	return profileFlags{
		persona:     fs.String("persona", "", "Built-in persona name (overrides the numeric flags)"),
		consumption: fs.Float64("consumption", 0, "Quarterly net grid consumption, kWh"),
		peak:        fs.Float64("peak", 0, "Peak share, percent"),
		shoulder:    fs.Float64("shoulder", 0, "Shoulder share, percent"),
		offPeak:     fs.Float64("offpeak", 0, "Off-peak share, percent"),
		export:      fs.Float64("export", 0, "Quarterly solar export, kWh"),
	}
}

func (pf profileFlags) build() (model.UsageProfile, error) {
	if *pf.persona != "" {
		p, ok := data.PersonaByName(*pf.persona)
		if !ok {
			return model.UsageProfile{}, fmt.Errorf("unknown persona %q", *pf.persona)
		}
		return p.Profile, nil
	}
	profile := model.UsageProfile{
		QuarterlyConsumptionKwh: *pf.consumption,
		PeakPercent:             *pf.peak,
		ShoulderPercent:         *pf.shoulder,
		OffPeakPercent:          *pf.offPeak,
		SolarExportKwh:          *pf.export,
	}
	if err := profile.Validate(); err != nil {
		return model.UsageProfile{}, err
	}
	return profile, nil
}

func loadRecords(plansPath, cfgPath string) []model.TariffRecord {
	records, skipped, err := data.LoadPlans(plansPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load plans: %v\n", err)
		os.Exit(1)
	}
	for _, serr := range skipped {
		fmt.Fprintf(os.Stderr, "warning: %v\n", serr)
	}
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		records = cfg.FilterRecords(records)
	}
	return records
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	plansPath := fs.String("plans", "all_energy_plans.json", "Path to plans JSON document")
	cfgPath := fs.String("config", "", "Optional YAML config with filter policy")
	outPath := fs.String("out", "", "Optional CSV output path")
	top := fs.Int("top", 0, "Print only the top N rows (0 = all)")
	pf := addProfileFlags(fs)
	_ = fs.Parse(args)

	profile, err := pf.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	records := loadRecords(*plansPath, *cfgPath)
	ranked, err := engine.Rank(records, profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := analysis.WriteRankingCSV(*outPath, ranked); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(ranked), *outPath)
	}

	rows := ranked
	if *top > 0 && *top < len(rows) {
		rows = rows[:*top]
	}
	fmt.Printf("%-4s %-22s %-30s %10s %10s %10s %10s\n",
		"rank", "retailer", "plan", "supply$", "usage$", "solar$", "total$")
	for i, b := range rows {
		fmt.Printf("%-4d %-22s %-30s %10s %10s %10s %10s\n",
			i+1,
			truncate(b.Record.RetailerName, 22),
			truncate(b.Record.PlanName, 30),
			b.SupplyCharge.StringFixed(2),
			b.UsageCharge.StringFixed(2),
			b.SolarCredit.StringFixed(2),
			b.TotalCost.StringFixed(2),
		)
	}
	fmt.Printf("\n%d of %d plans ranked (ineligible plans excluded)\n", len(ranked), len(records))
}

func cmdCalculate(args []string) {
	fs := flag.NewFlagSet("calculate", flag.ExitOnError)
	plansPath := fs.String("plans", "all_energy_plans.json", "Path to plans JSON document")
	cfgPath := fs.String("config", "", "Optional YAML config with filter policy")
	planID := fs.String("plan", "", "Plan id to calculate")
	pf := addProfileFlags(fs)
	_ = fs.Parse(args)

	if *planID == "" {
		fmt.Fprintln(os.Stderr, "--plan is required")
		os.Exit(2)
	}
	profile, err := pf.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	record, ok := findPlan(loadRecords(*plansPath, *cfgPath), *planID)
	if !ok {
		fmt.Fprintf(os.Stderr, "no plan with id %s\n", *planID)
		os.Exit(1)
	}

	bill, err := engine.BillAccurate{}.Calculate(record, profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s — %s (%s)\n", record.RetailerName, record.PlanName, record.PlanID)
	fmt.Printf("  Supply charge:     $%s\n", bill.SupplyCharge.StringFixed(2))
	fmt.Printf("  Usage charge:      $%s\n", bill.UsageCharge.StringFixed(2))
	fmt.Printf("  Membership fee:    $%s\n", bill.MembershipFeeQuarterly.StringFixed(2))
	fmt.Printf("  Solar credit:     -$%s\n", bill.SolarCredit.StringFixed(2))
	if !bill.DiscountSavings.IsZero() {
		fmt.Printf("  Discount savings: -$%s\n", bill.DiscountSavings.StringFixed(2))
	}
	fmt.Printf("  Quarterly total:   $%s\n", bill.TotalCost.StringFixed(2))
	fmt.Printf("  Annual estimate:   $%s\n", bill.AnnualCost().StringFixed(2))
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	plansPath := fs.String("plans", "all_energy_plans.json", "Path to plans JSON document")
	cfgPath := fs.String("config", "", "Optional YAML config with filter policy")
	planID := fs.String("plan", "", "Plan id to analyze")
	pf := addProfileFlags(fs)
	_ = fs.Parse(args)

	if *planID == "" {
		fmt.Fprintln(os.Stderr, "--plan is required")
		os.Exit(2)
	}
	profile, err := pf.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	record, ok := findPlan(loadRecords(*plansPath, *cfgPath), *planID)
	if !ok {
		fmt.Fprintf(os.Stderr, "no plan with id %s\n", *planID)
		os.Exit(1)
	}

	s, err := analysis.Sensitivity(record, profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s — %s: total $%s\n", s.RetailerName, record.PlanName, s.TotalCost.StringFixed(2))
	fmt.Printf("  Supply:   %5.1f%%\n", s.SupplyImpactPct)
	fmt.Printf("  Usage:    %5.1f%%  (peak %.1f%%, shoulder %.1f%%, off-peak %.1f%%)\n",
		s.UsageImpactPct, s.PeakImpactPct, s.ShoulderImpactPct, s.OffPeakImpactPct)
	fmt.Printf("  Solar:    %5.1f%% offset\n", s.SolarImpactPct)
}

func cmdPersonas(args []string) {
	fs := flag.NewFlagSet("personas", flag.ExitOnError)
	plansPath := fs.String("plans", "all_energy_plans.json", "Path to plans JSON document")
	cfgPath := fs.String("config", "", "Optional YAML config with filter policy")
	outPath := fs.String("out", "", "Optional CSV output path")
	_ = fs.Parse(args)

	records := loadRecords(*plansPath, *cfgPath)
	result, err := analysis.Sweep(records)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%-26s %-22s %-30s %10s %10s %8s\n",
		"persona", "retailer", "best plan", "best$", "median$", "saves$")
	for _, r := range result.Rows {
		fmt.Printf("%-26s %-22s %-30s %10s %10s %8s\n",
			truncate(r.Persona, 26),
			truncate(r.RetailerName, 22),
			truncate(r.PlanName, 30),
			r.BestCost.StringFixed(2),
			r.MedianCost.StringFixed(2),
			r.Savings.StringFixed(2),
		)
	}
	if result.BestOverall != "" {
		fmt.Printf("\nMost frequent winner: %s\n", result.BestOverall)
	}

	if *outPath != "" {
		if err := analysis.WriteSweepCSV(*outPath, result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Rows), *outPath)
	}
}

func findPlan(records []model.TariffRecord, id string) (model.TariffRecord, bool) {
	for _, r := range records {
		if r.PlanID == id {
			return r, true
		}
	}
	return model.TariffRecord{}, false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
