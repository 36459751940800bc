package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
	"github.com/mil-can/milcan-api/internal/domain"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context) (domain.Statistics, error)
}

type StatisticsHandler struct {
	svc StatisticsService
}

func NewStatisticsHandler(svc StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		svc: svc,
	}
}

// HandleGetStatistics godoc
// @Summary      Get platform-wide statistics
// @Description  Returns the aggregated counters. A zeroed row is created on first call.
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  domain.Statistics
// @Failure      500  {object}  response.Err
// @Router       /statistics [get]
func (h *StatisticsHandler) HandleGetStatistics(ctx *gin.Context) {
	stats, err := h.svc.GetStatistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStatistics -> h.svc.GetStatistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
