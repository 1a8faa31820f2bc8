package engine

import (
	"time"

	"github.com/KrE80r/energy-front/internal/model"
)

// Eligible reports whether a tariff record is a legitimate candidate for
// cost comparison. Ineligible records are excluded from ranking, not
// reported as errors.
//
// A record is ineligible if:
//   - it carries a demand charge (not modeled by this engine)
//   - peak or off-peak rate is missing or non-positive
//   - a shoulder rate is present but non-positive while the plan's own
//     time-block metadata declares a shoulder window (a 2-rate plan with no
//     shoulder window is fine)
//
// Upstream policy (restriction flags, effective dates, retailer blacklists)
// is deliberately not checked here; compose RecordFilters for that.
func Eligible(r model.TariffRecord) bool {
	return eligibleReason(r) == ""
}

func eligibleReason(r model.TariffRecord) string {
	if r.HasDemandCharge {
		return "has demand charges"
	}
	if r.PeakRate <= 0 {
		return "missing or invalid peak rate"
	}
	if r.OffPeakRate <= 0 {
		return "missing or invalid off-peak rate"
	}
	if r.ShoulderRate != nil && *r.ShoulderRate <= 0 && r.HasShoulderWindow {
		return "shoulder window declared but shoulder rate is zero"
	}
	return ""
}

// RecordFilter is a caller-composable predicate over tariff records.
// Filters express upstream policy decisions that do not belong in the
// eligibility rules above.
type RecordFilter func(model.TariffRecord) bool

// ApplyFilters returns the records passing every filter, preserving input
// order. The input slice is never mutated.
func ApplyFilters(records []model.TariffRecord, filters ...RecordFilter) []model.TariffRecord {
	out := make([]model.TariffRecord, 0, len(records))
	for _, r := range records {
		keep := true
		for _, f := range filters {
			if !f(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// EffectiveSince keeps records whose plan validity starts on or after the
// cutoff. Records without an effective date are kept.
func EffectiveSince(cutoff time.Time) RecordFilter {
	return func(r model.TariffRecord) bool {
		if r.EffectiveDate.IsZero() {
			return true
		}
		return !r.EffectiveDate.Before(cutoff)
	}
}

// ExcludePlanIDs drops records by plan id.
func ExcludePlanIDs(ids ...string) RecordFilter {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(r model.TariffRecord) bool {
		_, excluded := set[r.PlanID]
		return !excluded
	}
}

// ExcludeRetailers drops records by retailer name.
func ExcludeRetailers(names ...string) RecordFilter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(r model.TariffRecord) bool {
		_, excluded := set[r.RetailerName]
		return !excluded
	}
}

// ExcludeRestrictionFlags drops records carrying any of the given
// eligibility-restriction categories (e.g. "SC" seniors card, "OC" other
// customer requirements).
func ExcludeRestrictionFlags(flags ...string) RecordFilter {
	set := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		set[f] = struct{}{}
	}
	return func(r model.TariffRecord) bool {
		for _, f := range r.RestrictionFlags {
			if _, excluded := set[f]; excluded {
				return false
			}
		}
		return true
	}
}
