package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
	"github.com/mil-can/milcan-api/internal/domain"
)

type ReviewService interface {
	GetFeaturedReviews(ctx context.Context) ([]domain.Review, error)
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
	}
}

// HandleGetReviews godoc
// @Summary      List featured community reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   domain.Review
// @Failure      500  {object}  response.Err
// @Router       /reviews [get]
func (h *ReviewHandler) HandleGetReviews(ctx *gin.Context) {
	reviews, err := h.svc.GetFeaturedReviews(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetReviews -> h.svc.GetFeaturedReviews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}
