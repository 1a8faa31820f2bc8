package model

import (
	"errors"
	"fmt"
	"math"
)

// PercentTolerance is the slack allowed when checking that the TOU split
// sums to 100. Form inputs routinely carry float noise of this size.
const PercentTolerance = 0.1

// UsageProfile is a household's estimated consumption pattern for one
// 91-day quarter.
//
// QuarterlyConsumptionKwh is NET grid draw as reported on a bill. Smart
// meters have already subtracted self-consumed solar from that figure, so
// the engine must never re-derive self-consumption from a separate
// generation number — doing so double-counts solar. Treat "already net of
// self-consumption" as a hard precondition on this field.
type UsageProfile struct {
	QuarterlyConsumptionKwh float64

	// TOU split, percentages summing to 100 (within PercentTolerance).
	PeakPercent     float64
	ShoulderPercent float64
	OffPeakPercent  float64

	// SolarExportKwh is energy exported to the grid this quarter. Zero for
	// households without solar.
	SolarExportKwh float64

	// SolarExportByWindow optionally splits the export across time windows
	// (keys match SolarTier.Window). Only consulted for plans whose feed-in
	// schedule is time-of-use bounded.
	SolarExportByWindow map[string]float64
}

func (p *UsageProfile) Validate() error {
	if p.QuarterlyConsumptionKwh < 0 {
		return errors.New("quarterly consumption must be >= 0")
	}
	if p.PeakPercent < 0 || p.ShoulderPercent < 0 || p.OffPeakPercent < 0 {
		return errors.New("TOU percentages must be >= 0")
	}
	if p.PeakPercent == 0 && p.ShoulderPercent == 0 && p.OffPeakPercent == 0 {
		return errors.New("TOU split is all zero")
	}
	total := p.PeakPercent + p.ShoulderPercent + p.OffPeakPercent
	if math.Abs(total-100) > PercentTolerance {
		return fmt.Errorf("TOU percentages sum to %.2f, not 100", total)
	}
	if p.SolarExportKwh < 0 {
		return errors.New("solar export must be >= 0")
	}
	for window, kwh := range p.SolarExportByWindow {
		if kwh < 0 {
			return fmt.Errorf("solar export for window %q must be >= 0", window)
		}
	}
	return nil
}
