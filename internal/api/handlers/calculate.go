package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrE80r/energy-front/internal/api/models"
	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/model"
)

// CalculateHandler serves single-plan bill calculations.
type CalculateHandler struct {
	byID    map[string]model.TariffRecord
	formula engine.Formula
}

func NewCalculateHandler(records []model.TariffRecord) *CalculateHandler {
	byID := make(map[string]model.TariffRecord, len(records))
	for _, r := range records {
		byID[r.PlanID] = r
	}
	return &CalculateHandler{byID: byID, formula: engine.BillAccurate{}}
}

// CalculatePlan handles POST /api/v1/calculate.
func (h *CalculateHandler) CalculatePlan(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	record, ok := h.byID[req.PlanID]
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PLAN_NOT_FOUND",
				Message: "no loaded plan with id " + req.PlanID,
			},
		})
		return
	}

	bill, err := h.formula.Calculate(record, req.Profile.ToModel())
	if err != nil {
		var verr *engine.ValidationError
		var ierr *engine.IneligibleError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_INPUT",
					Message: verr.Error(),
				},
			})
		case errors.As(err, &ierr):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "PLAN_INELIGIBLE",
					Message: ierr.Error(),
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "CALCULATION_FAILED",
					Message: err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.CalculateResponse{Breakdown: models.BreakdownFrom(bill)})
}
