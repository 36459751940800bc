package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
	"github.com/mil-can/milcan-api/internal/domain"
)

type BadgeService interface {
	GetCatalog(ctx context.Context) ([]domain.Badge, error)
	GetUserBadges(ctx context.Context, userID uint) ([]domain.UserBadge, error)
}

type BadgeHandler struct {
	svc  BadgeService
	uSvc UserService
}

func NewBadgeHandler(svc BadgeService, uSvc UserService) *BadgeHandler {
	return &BadgeHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetBadges godoc
// @Summary      List the badge catalog
// @Tags         badges
// @Produce      json
// @Success      200  {array}   domain.Badge
// @Failure      500  {object}  response.Err
// @Router       /badges [get]
func (h *BadgeHandler) HandleGetBadges(ctx *gin.Context) {
	badges, err := h.svc.GetCatalog(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBadges -> h.svc.GetCatalog -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, badges)
}

// HandleGetUserBadges godoc
// @Summary      List the caller's earned badges
// @Tags         badges
// @Produce      json
// @Success      200  {array}   domain.UserBadge
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /badges/user [get]
// @Security BearerAuth
func (h *BadgeHandler) HandleGetUserBadges(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userBadges, err := h.svc.GetUserBadges(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUserBadges -> h.svc.GetUserBadges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, userBadges)
}
