package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KrE80r/energy-front/internal/model"
)

// PlansDocument matches the JSON produced by the plan extraction pipeline.
//
// Shape:
//
//	{
//	  "metadata": { ... },
//	  "plans": { "TOU": [ ... ] }
//	}
type PlansDocument struct {
	Metadata map[string]any `json:"metadata"`
	Plans    struct {
		TOU []PlanJSON `json:"TOU"`
	} `json:"plans"`
}

// PlanJSON is one raw plan entry. Rates are cents/kWh GST-inclusive, the
// supply charge cents/day, the membership fee dollars/year.
type PlanJSON struct {
	PlanID       string `json:"plan_id"`
	RetailerName string `json:"retailer_name"`
	PlanName     string `json:"plan_name"`

	PeakCost          float64  `json:"peak_cost"`
	ShoulderCost      *float64 `json:"shoulder_cost"`
	OffPeakCost       float64  `json:"off_peak_cost"`
	DailySupplyCharge float64  `json:"daily_supply_charge"`

	MembershipFeeAnnual *float64 `json:"membership_fee_annual"`

	SolarFeedInTariff []TierJSON `json:"solar_feed_in_tariff"`

	HasDemandCharge bool   `json:"has_demand_charge"`
	EffectiveDate   string `json:"effective_date"`

	DetailedTimeBlocks []TimeBlockJSON `json:"detailed_time_blocks"`

	EligibilityRestrictions []string `json:"eligibility_restrictions"`

	Discounts *DiscountJSON `json:"discounts"`
}

// TierJSON is a raw feed-in tier. The upstream document duck-types these:
// a tier carries either a volume field (kWh/day allowance, 0 or absent on
// the final tier meaning unbounded) or a time_type field, never both.
type TierJSON struct {
	Rate     float64  `json:"rate"`
	Volume   *float64 `json:"volume"`
	TimeType *string  `json:"time_type"`
}

// TimeBlockJSON describes one declared TOU window of a plan.
type TimeBlockJSON struct {
	Name            string `json:"name"`
	TimeOfUsePeriod string `json:"time_of_use_period"`
}

// DiscountJSON carries discount terms plus the three reference cost figures
// from the price-comparator response.
type DiscountJSON struct {
	Percent     float64 `json:"percent"`
	Conditional bool    `json:"conditional"`

	NoDiscountCost         float64 `json:"no_discount_cost"`
	AllDiscountsCost       float64 `json:"all_discounts_cost"`
	GuaranteedDiscountCost float64 `json:"guaranteed_discount_cost"`
}

// LoadPlans reads a plans document and normalizes every TOU entry into a
// TariffRecord. Individual malformed plans are skipped with their errors
// collected; a document that cannot be read or parsed at all is fatal.
func LoadPlans(path string) ([]model.TariffRecord, []error, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc PlansDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	records, skipped := NormalizePlans(doc.Plans.TOU)
	return records, skipped, nil
}

// NormalizePlans converts raw plan entries to TariffRecords, resolving the
// duck-typed tier shapes once here so calculation never re-sniffs them.
func NormalizePlans(plans []PlanJSON) ([]model.TariffRecord, []error) {
	records := make([]model.TariffRecord, 0, len(plans))
	var skipped []error

	for _, p := range plans {
		r, err := normalizePlan(p)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("plan %s: %w", p.PlanID, err))
			continue
		}
		records = append(records, r)
	}
	return records, skipped
}

func normalizePlan(p PlanJSON) (model.TariffRecord, error) {
	tiers, err := normalizeTiers(p.SolarFeedInTariff)
	if err != nil {
		return model.TariffRecord{}, err
	}

	var effective time.Time
	if p.EffectiveDate != "" {
		effective, err = time.Parse("2006-01-02", p.EffectiveDate)
		if err != nil {
			return model.TariffRecord{}, fmt.Errorf("effective_date: %w", err)
		}
	}

	r := model.TariffRecord{
		PlanID:            p.PlanID,
		RetailerName:      p.RetailerName,
		PlanName:          p.PlanName,
		PeakRate:          p.PeakCost,
		ShoulderRate:      p.ShoulderCost,
		OffPeakRate:       p.OffPeakCost,
		DailySupplyCharge: p.DailySupplyCharge,
		MembershipFee:     p.MembershipFeeAnnual,
		SolarCreditTiers:  tiers,
		HasDemandCharge:   p.HasDemandCharge,
		HasShoulderWindow: hasShoulderBlock(p.DetailedTimeBlocks),
		EffectiveDate:     effective,
		RestrictionFlags:  p.EligibilityRestrictions,
	}

	if p.Discounts != nil {
		r.Discount = &model.DiscountTerms{
			Percent:                p.Discounts.Percent,
			Conditional:            p.Discounts.Conditional,
			NoDiscountCost:         p.Discounts.NoDiscountCost,
			AllDiscountsCost:       p.Discounts.AllDiscountsCost,
			GuaranteedDiscountCost: p.Discounts.GuaranteedDiscountCost,
		}
	}

	if err := r.Validate(); err != nil {
		return model.TariffRecord{}, err
	}
	return r, nil
}

func normalizeTiers(raw []TierJSON) ([]model.SolarTier, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	tiers := make([]model.SolarTier, 0, len(raw))
	for i, t := range raw {
		switch {
		case t.Volume != nil && t.TimeType != nil:
			return nil, fmt.Errorf("solar tier %d: has both volume and time_type", i)
		case t.TimeType != nil:
			tiers = append(tiers, model.SolarTier{
				Kind:      model.TierTimeOfUse,
				RateCents: t.Rate,
				Window:    *t.TimeType,
			})
		default:
			// Volume tier; a missing or zero volume marks the unbounded
			// final tier.
			var limit float64
			if t.Volume != nil {
				limit = *t.Volume
			}
			tiers = append(tiers, model.SolarTier{
				Kind:          model.TierVolume,
				RateCents:     t.Rate,
				DailyLimitKwh: limit,
			})
		}
	}
	return tiers, nil
}

// hasShoulderBlock reports whether the plan's time-block metadata declares
// a shoulder window, either by period code or by name.
func hasShoulderBlock(blocks []TimeBlockJSON) bool {
	for _, b := range blocks {
		if b.TimeOfUsePeriod == "S" {
			return true
		}
		if strings.Contains(strings.ToLower(b.Name), "shoulder") {
			return true
		}
	}
	return false
}
