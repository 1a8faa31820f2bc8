package model

import (
	"errors"
	"fmt"
	"time"
)

// TariffRecord is the normalized view of one retailer's TOU plan for one
// billing period.
// Units:
// - rates: cents/kWh, GST-inclusive
// - DailySupplyCharge: cents/day
// - MembershipFee: dollars/year
type TariffRecord struct {
	PlanID       string
	RetailerName string
	PlanName     string

	// PeakRate and OffPeakRate must both be present and positive for the
	// record to be comparable. ShoulderRate is nil for 2-rate plans.
	PeakRate     float64
	ShoulderRate *float64
	OffPeakRate  float64

	DailySupplyCharge float64
	MembershipFee     *float64

	// SolarCreditTiers is the feed-in schedule in declared order. A volume
	// tier with no daily limit is unbounded and must be last.
	SolarCreditTiers []SolarTier

	// HasDemandCharge disqualifies the plan from comparison entirely;
	// demand charges are not modeled.
	HasDemandCharge bool

	// HasShoulderWindow reports whether the plan's own time-block metadata
	// declares a distinct shoulder window. A present-but-zero ShoulderRate
	// is only legal when no such window exists.
	HasShoulderWindow bool

	EffectiveDate    time.Time
	RestrictionFlags []string

	Discount *DiscountTerms
}

// SolarTierKind tags the two feed-in tier shapes. The upstream document
// distinguishes them only by which fields a tier object carries; they are
// resolved once at parse time, never re-sniffed during calculation.
type SolarTierKind int

const (
	TierVolume SolarTierKind = iota
	TierTimeOfUse
)

// SolarTier is one step of a feed-in credit schedule.
type SolarTier struct {
	Kind      SolarTierKind
	RateCents float64

	// DailyLimitKwh applies to volume tiers: the kWh/day this tier's rate
	// covers. Zero means unbounded.
	DailyLimitKwh float64

	// Window applies to time-of-use tiers, e.g. "P" or "OP".
	Window string
}

// Unbounded reports whether a volume tier absorbs all remaining export.
func (t SolarTier) Unbounded() bool {
	return t.Kind == TierVolume && t.DailyLimitKwh <= 0
}

// DiscountTerms carries a plan's advertised discount plus the three raw
// reference cost figures used for guaranteed-discount detection. A zero
// reference cost means the figure was absent from the source.
type DiscountTerms struct {
	Percent     float64
	Conditional bool

	NoDiscountCost         float64
	AllDiscountsCost       float64
	GuaranteedDiscountCost float64
}

// Validate checks structural invariants that parsing cannot express.
// Rate-presence rules live in the eligibility filter; this only rejects
// records that are malformed rather than merely ineligible.
func (r *TariffRecord) Validate() error {
	if r.PlanID == "" {
		return errors.New("plan id is required")
	}
	if r.DailySupplyCharge < 0 {
		return errors.New("daily supply charge must be >= 0")
	}
	if r.MembershipFee != nil && *r.MembershipFee < 0 {
		return errors.New("membership fee must be >= 0")
	}
	if r.ShoulderRate != nil && *r.ShoulderRate <= 0 && r.HasShoulderWindow {
		return errors.New("zero shoulder rate with a declared shoulder window")
	}
	for i, tier := range r.SolarCreditTiers {
		if tier.RateCents < 0 {
			return fmt.Errorf("solar tier %d: rate must be >= 0", i)
		}
		if tier.Unbounded() && i != len(r.SolarCreditTiers)-1 {
			return fmt.Errorf("solar tier %d: unbounded tier must be last", i)
		}
	}
	return nil
}

// HasShoulderRate reports whether a positive shoulder rate is present.
func (r *TariffRecord) HasShoulderRate() bool {
	return r.ShoulderRate != nil && *r.ShoulderRate > 0
}
