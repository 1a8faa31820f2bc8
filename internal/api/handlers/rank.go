package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KrE80r/energy-front/internal/api/models"
	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/metrics"
	"github.com/KrE80r/energy-front/internal/model"
)

// RankHandler serves ranking requests over the server's loaded plan set.
type RankHandler struct {
	records []model.TariffRecord
}

func NewRankHandler(records []model.TariffRecord) *RankHandler {
	return &RankHandler{records: records}
}

// RankPlans handles POST /api/v1/rank.
func (h *RankHandler) RankPlans(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	metrics.RankRequestsTotal.Inc()
	start := time.Now()

	ranked, err := engine.Rank(h.records, req.Profile.ToModel())
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_PROFILE",
					Message: verr.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RANKING_FAILED",
				Message: err.Error(),
			},
		})
		return
	}

	metrics.RankDurationSeconds.Observe(time.Since(start).Seconds())

	total := len(ranked)
	if req.Limit > 0 && req.Limit < total {
		ranked = ranked[:req.Limit]
	}

	rankings := make([]models.Ranking, len(ranked))
	for i, b := range ranked {
		rankings[i] = models.Ranking{
			Rank:      i + 1,
			Breakdown: models.BreakdownFrom(b),
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{
		Rankings:   rankings,
		Candidates: len(h.records),
		Ranked:     total,
	})
}
