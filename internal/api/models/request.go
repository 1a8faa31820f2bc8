package models

import "github.com/KrE80r/energy-front/internal/model"

// ProfileRequest is the wire shape of a usage profile. Field names follow
// the form fields the presentation layer collects.
type ProfileRequest struct {
	QuarterlyConsumptionKwh float64 `json:"quarterly_consumption_kwh" binding:"required"`
	PeakPercent             float64 `json:"peak_percent"`
	ShoulderPercent         float64 `json:"shoulder_percent"`
	OffPeakPercent          float64 `json:"off_peak_percent"`

	SolarExportKwh      float64            `json:"solar_export_kwh,omitempty"`
	SolarExportByWindow map[string]float64 `json:"solar_export_by_window,omitempty"`
}

// ToModel converts the request into the engine's value type. Validation is
// the engine's job, not the transport's.
func (r ProfileRequest) ToModel() model.UsageProfile {
	return model.UsageProfile{
		QuarterlyConsumptionKwh: r.QuarterlyConsumptionKwh,
		PeakPercent:             r.PeakPercent,
		ShoulderPercent:         r.ShoulderPercent,
		OffPeakPercent:          r.OffPeakPercent,
		SolarExportKwh:          r.SolarExportKwh,
		SolarExportByWindow:     r.SolarExportByWindow,
	}
}

// RankRequest asks for all loaded plans ranked for one profile.
type RankRequest struct {
	Profile ProfileRequest `json:"profile" binding:"required"`

	// Limit truncates the response to the top N (0 = all). This is a
	// presentation convenience; the ranking itself is never truncated.
	Limit int `json:"limit,omitempty"`
}

// CalculateRequest asks for a single plan's bill breakdown.
type CalculateRequest struct {
	PlanID  string         `json:"plan_id" binding:"required"`
	Profile ProfileRequest `json:"profile" binding:"required"`
}
