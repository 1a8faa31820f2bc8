package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrE80r/energy-front/internal/api/models"
	"github.com/KrE80r/energy-front/internal/data"
	"github.com/KrE80r/energy-front/internal/model"
)

// PlansHandler lists the server's loaded plan set.
type PlansHandler struct {
	records []model.TariffRecord
}

func NewPlansHandler(records []model.TariffRecord) *PlansHandler {
	return &PlansHandler{records: records}
}

// ListPlans handles GET /api/v1/plans.
func (h *PlansHandler) ListPlans(c *gin.Context) {
	plans := make([]models.PlanSummary, len(h.records))
	for i, r := range h.records {
		plans[i] = models.PlanSummary{
			PlanID:           r.PlanID,
			RetailerName:     r.RetailerName,
			PlanName:         r.PlanName,
			PeakRate:         r.PeakRate,
			ShoulderRate:     r.ShoulderRate,
			OffPeakRate:      r.OffPeakRate,
			DailySupply:      r.DailySupplyCharge,
			HasDemandCharge:  r.HasDemandCharge,
			RestrictionFlags: r.RestrictionFlags,
		}
	}
	c.JSON(http.StatusOK, models.PlansResponse{Plans: plans})
}

// ListPersonas handles GET /api/v1/personas.
func ListPersonas(c *gin.Context) {
	presets := data.Personas()
	out := make([]models.PersonaEntry, len(presets))
	for i, p := range presets {
		out[i] = models.PersonaEntry{
			Name:        p.Name,
			Group:       p.Group,
			Description: p.Description,
			Profile: models.ProfileRequest{
				QuarterlyConsumptionKwh: p.Profile.QuarterlyConsumptionKwh,
				PeakPercent:             p.Profile.PeakPercent,
				ShoulderPercent:         p.Profile.ShoulderPercent,
				OffPeakPercent:          p.Profile.OffPeakPercent,
				SolarExportKwh:          p.Profile.SolarExportKwh,
			},
		}
	}
	c.JSON(http.StatusOK, models.PersonasResponse{Personas: out})
}
