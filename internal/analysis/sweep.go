package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/KrE80r/energy-front/internal/data"
	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/model"
)

// SweepRow is one row of per-persona output.
// This is the primary artifact for "which plan wins for whom".
type SweepRow struct {
	Persona     string
	Group       string
	Description string

	BestPlanID   string
	RetailerName string
	PlanName     string

	BestCost   decimal.Decimal
	MedianCost decimal.Decimal
	Savings    decimal.Decimal

	Eligible int
}

// SweepResult aggregates a full persona sweep.
type SweepResult struct {
	Rows []SweepRow

	// BestOverall is the plan id that ranked first most often across the
	// sweep. Ties go to the first persona order.
	BestOverall string
}

// Sweep ranks the record set for every built-in persona and reports the
// winner per persona. Personas whose ranking comes back empty (for example a
// record set with no eligible plans) still produce a row with zero costs.
func Sweep(records []model.TariffRecord) (*SweepResult, error) {
	return SweepPersonas(records, data.Personas())
}

// SweepPersonas is Sweep over a caller-supplied persona set.
func SweepPersonas(records []model.TariffRecord, personas []data.Persona) (*SweepResult, error) {
	rows := make([]SweepRow, 0, len(personas))
	wins := make(map[string]int)
	var bestOverall string

	for _, p := range personas {
		ranked, err := engine.Rank(records, p.Profile)
		if err != nil {
			return nil, err
		}

		row := SweepRow{
			Persona:     p.Name,
			Group:       p.Group,
			Description: p.Description,
			Eligible:    len(ranked),
		}
		if len(ranked) > 0 {
			best := ranked[0]
			row.BestPlanID = best.Record.PlanID
			row.RetailerName = best.Record.RetailerName
			row.PlanName = best.Record.PlanName
			row.BestCost = best.TotalCost

			summary := Summarize(ranked)
			row.MedianCost = summary.MedianCost
			row.Savings = summary.SavingsVsMedian

			wins[best.Record.PlanID]++
			if bestOverall == "" || wins[best.Record.PlanID] > wins[bestOverall] {
				bestOverall = best.Record.PlanID
			}
		}
		rows = append(rows, row)
	}

	return &SweepResult{Rows: rows, BestOverall: bestOverall}, nil
}
