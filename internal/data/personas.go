package data

import "github.com/KrE80r/energy-front/internal/model"

// Persona is a named usage-profile preset. The splits are constrained by
// the clock: peak covers 14h/day, shoulder and off-peak 5h each, and
// off-peak rarely exceeds ~25% because only automated loads run 1am-6am.
//
// Solar personas carry export volume only. Consumption is already net of
// self-consumed solar, same as on a bill, so no generation or
// self-consumption figure appears here.
type Persona struct {
	Name        string
	Group       string
	Description string
	Profile     model.UsageProfile
}

// Personas returns the built-in presets: commuter and work-from-home
// households, with and without solar, three usage variations each.
func Personas() []Persona {
	return []Persona{
		{
			Name:        "Inefficient Commuter",
			Group:       "Commuter (No Solar)",
			Description: "No energy management, all appliances run during convenient peak hours",
			Profile:     profile(1365, 85, 5, 10, 0),
		},
		{
			Name:        "Standard Commuter",
			Group:       "Commuter (No Solar)",
			Description: "Some basic energy awareness, hot water on a timer",
			Profile:     profile(1365, 75, 8, 17, 0),
		},
		{
			Name:        "Optimized Commuter",
			Group:       "Commuter (No Solar)",
			Description: "EV charging, pool pump and dishwasher all timed for 1-6am",
			Profile:     profile(1365, 65, 10, 25, 0),
		},
		{
			Name:        "Heavy WFH User",
			Group:       "Work From Home (No Solar)",
			Description: "Gaming, multiple monitors, constant AC, home gym",
			Profile:     profile(1365, 80, 15, 5, 0),
		},
		{
			Name:        "Standard WFH",
			Group:       "Work From Home (No Solar)",
			Description: "Regular work setup, moderate AC use, standard appliances",
			Profile:     profile(1365, 70, 20, 10, 0),
		},
		{
			Name:        "Energy-Smart WFH",
			Group:       "Work From Home (No Solar)",
			Description: "Deliberately schedules appliances into the shoulder window",
			Profile:     profile(1365, 60, 25, 15, 0),
		},
		{
			Name:        "Solar Export Maximizer",
			Group:       "Commuter (With Solar)",
			Description: "Minimizes daytime usage to maximize export revenue",
			Profile:     profile(1365, 80, 5, 15, 1320),
		},
		{
			Name:        "Balanced Solar Commuter",
			Group:       "Commuter (With Solar)",
			Description: "Moderate usage with some weekend solar utilization",
			Profile:     profile(1365, 70, 8, 22, 1200),
		},
		{
			Name:        "Smart Solar Commuter",
			Group:       "Commuter (With Solar)",
			Description: "Maximum load shifting to off-peak while keeping strong export",
			Profile:     profile(1365, 60, 10, 30, 1125),
		},
		{
			Name:        "High-Consumption WFH Solar",
			Group:       "Work From Home (With Solar)",
			Description: "Heavy energy user despite solar",
			Profile:     profile(1365, 75, 20, 5, 975),
		},
		{
			Name:        "Standard WFH Solar",
			Group:       "Work From Home (With Solar)",
			Description: "Regular work setup with good solar utilization during work hours",
			Profile:     profile(1365, 65, 25, 10, 825),
		},
		{
			Name:        "Solar-Optimized WFH",
			Group:       "Work From Home (With Solar)",
			Description: "Appliances timed for solar hours, maximum self-consumption",
			Profile:     profile(1365, 55, 35, 10, 675),
		},
	}
}

// PersonaByName finds a preset by exact name.
func PersonaByName(name string) (Persona, bool) {
	for _, p := range Personas() {
		if p.Name == name {
			return p, true
		}
	}
	return Persona{}, false
}

func profile(consumption, peak, shoulder, offPeak, export float64) model.UsageProfile {
	return model.UsageProfile{
		QuarterlyConsumptionKwh: consumption,
		PeakPercent:             peak,
		ShoulderPercent:         shoulder,
		OffPeakPercent:          offPeak,
		SolarExportKwh:          export,
	}
}
