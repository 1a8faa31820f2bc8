package models

import (
	"github.com/KrE80r/energy-front/internal/model"
)

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Breakdown is the wire shape of a bill breakdown. Amounts are fixed-point
// dollar strings so the client never re-rounds.
type Breakdown struct {
	PlanID       string `json:"plan_id"`
	RetailerName string `json:"retailer_name"`
	PlanName     string `json:"plan_name"`

	SupplyCharge    string `json:"supply_charge"`
	UsageCharge     string `json:"usage_charge"`
	MembershipFee   string `json:"membership_fee"`
	SolarCredit     string `json:"solar_credit"`
	DiscountSavings string `json:"discount_savings"`
	TotalCost       string `json:"total_cost"`
	MonthlyCost     string `json:"monthly_cost"`
	AnnualCost      string `json:"annual_cost"`
}

func BreakdownFrom(b model.BillBreakdown) Breakdown {
	return Breakdown{
		PlanID:          b.Record.PlanID,
		RetailerName:    b.Record.RetailerName,
		PlanName:        b.Record.PlanName,
		SupplyCharge:    b.SupplyCharge.StringFixed(2),
		UsageCharge:     b.UsageCharge.StringFixed(2),
		MembershipFee:   b.MembershipFeeQuarterly.StringFixed(2),
		SolarCredit:     b.SolarCredit.StringFixed(2),
		DiscountSavings: b.DiscountSavings.StringFixed(2),
		TotalCost:       b.TotalCost.StringFixed(2),
		MonthlyCost:     b.MonthlyCost().StringFixed(2),
		AnnualCost:      b.AnnualCost().StringFixed(2),
	}
}

// Ranking is one entry of a rank response.
type Ranking struct {
	Rank int `json:"rank"`
	Breakdown
}

type RankResponse struct {
	Rankings []Ranking `json:"rankings"`

	// Candidates is how many records entered the ranking before
	// eligibility filtering; Ranked is how many survived.
	Candidates int `json:"candidates"`
	Ranked     int `json:"ranked"`
}

type CalculateResponse struct {
	Breakdown Breakdown `json:"breakdown"`
}

// PlanSummary lists a loaded plan without its full rate detail.
type PlanSummary struct {
	PlanID           string   `json:"plan_id"`
	RetailerName     string   `json:"retailer_name"`
	PlanName         string   `json:"plan_name"`
	PeakRate         float64  `json:"peak_rate"`
	ShoulderRate     *float64 `json:"shoulder_rate,omitempty"`
	OffPeakRate      float64  `json:"off_peak_rate"`
	DailySupply      float64  `json:"daily_supply_charge"`
	HasDemandCharge  bool     `json:"has_demand_charge"`
	RestrictionFlags []string `json:"restriction_flags,omitempty"`
}

type PlansResponse struct {
	Plans []PlanSummary `json:"plans"`
}

// PersonaEntry describes one built-in usage preset.
type PersonaEntry struct {
	Name        string         `json:"name"`
	Group       string         `json:"group"`
	Description string         `json:"description"`
	Profile     ProfileRequest `json:"profile"`
}

type PersonasResponse struct {
	Personas []PersonaEntry `json:"personas"`
}
