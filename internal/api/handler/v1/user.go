package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
)

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetCurrentUser godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/user [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetCurrentUser(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
