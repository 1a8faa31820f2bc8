package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/KrE80r/energy-front/internal/logging"
	"github.com/KrE80r/energy-front/internal/metrics"
	"github.com/KrE80r/energy-front/internal/model"
)

// Rank computes a bill for every eligible record and returns the results
// ordered cheapest-first. Records that fail eligibility are skipped
// silently; records that fail calculation are dropped with a diagnostic so
// one bad record cannot abort the rest. Ties keep their original input
// order — the domain defines no secondary key.
//
// Rank never mutates the input slice and applies no top-N truncation;
// limiting is a presentation concern.
func Rank(records []model.TariffRecord, profile model.UsageProfile) ([]model.BillBreakdown, error) {
	return RankWith(BillAccurate{}, records, profile)
}

// RankWith ranks using a specific named formula.
func RankWith(f Formula, records []model.TariffRecord, profile model.UsageProfile) ([]model.BillBreakdown, error) {
	if err := profile.Validate(); err != nil {
		return nil, &ValidationError{Field: "profile", Reason: err}
	}

	out := make([]model.BillBreakdown, 0, len(records))
	for _, r := range records {
		if reason := eligibleReason(r); reason != "" {
			metrics.IneligibleRecordsTotal.Inc()
			logging.Sugar.Debugw("record ineligible",
				"plan_id", r.PlanID,
				"retailer", r.RetailerName,
				"reason", reason,
			)
			continue
		}

		bill, err := f.Calculate(r, profile)
		if err != nil {
			metrics.CalculationErrorsTotal.WithLabelValues(errorReason(err)).Inc()
			logging.Logger.Warn("dropping record from ranking",
				zap.String("plan_id", r.PlanID),
				zap.String("retailer", r.RetailerName),
				zap.Error(err),
			)
			continue
		}
		metrics.CalculationsTotal.Inc()
		out = append(out, bill)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCost.LessThan(out[j].TotalCost)
	})
	return out, nil
}

func errorReason(err error) string {
	switch err.(type) {
	case *ValidationError:
		return "validation"
	case *IneligibleError:
		return "ineligible"
	default:
		return "calculation"
	}
}
