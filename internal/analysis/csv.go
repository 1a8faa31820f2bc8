package analysis

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/KrE80r/energy-front/internal/model"
)

// WriteRankingCSV writes ranked bill breakdowns to a CSV file, one row per
// plan, cheapest first. This is the primary artifact for "what would each
// plan cost".
func WriteRankingCSV(path string, ranked []model.BillBreakdown) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"rank",
		"plan_id",
		"retailer",
		"plan_name",
		"supply_charge",
		"usage_charge",
		"membership_fee",
		"solar_credit",
		"discount_savings",
		"total_cost",
		"monthly_cost",
		"annual_cost",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, b := range ranked {
		row := []string{
			strconv.Itoa(i + 1),
			b.Record.PlanID,
			b.Record.RetailerName,
			b.Record.PlanName,
			b.SupplyCharge.StringFixed(2),
			b.UsageCharge.StringFixed(2),
			b.MembershipFeeQuarterly.StringFixed(2),
			b.SolarCredit.StringFixed(2),
			b.DiscountSavings.StringFixed(2),
			b.TotalCost.StringFixed(2),
			b.MonthlyCost().StringFixed(2),
			b.AnnualCost().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteSweepCSV writes a persona sweep to a CSV file, one row per persona.
func WriteSweepCSV(path string, result *SweepResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"persona",
		"group",
		"best_plan_id",
		"retailer",
		"plan_name",
		"best_cost",
		"median_cost",
		"savings_vs_median",
		"eligible_plans",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range result.Rows {
		row := []string{
			r.Persona,
			r.Group,
			r.BestPlanID,
			r.RetailerName,
			r.PlanName,
			r.BestCost.StringFixed(2),
			r.MedianCost.StringFixed(2),
			r.Savings.StringFixed(2),
			strconv.Itoa(r.Eligible),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
