package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/request"
	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
)

type AssistantService interface {
	Chat(ctx context.Context, message string) string
}

type AssistantHandler struct {
	svc AssistantService
}

func NewAssistantHandler(svc AssistantService) *AssistantHandler {
	return &AssistantHandler{
		svc: svc,
	}
}

// HandleChat godoc
// @Summary      Chat with the media literacy assistant
// @Description  Proxies the message to the assistant. Upstream failures yield a friendly fallback, never an error.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        input  body      request.ChatRequest  true  "User message"
// @Success      200    {object}  response.ChatResponse
// @Failure      400    {object}  response.Err
// @Router       /ai/chat [post]
func (h *AssistantHandler) HandleChat(ctx *gin.Context) {
	var input request.ChatRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reply := h.svc.Chat(ctx.Request.Context(), input.Message)

	ctx.JSON(http.StatusOK, response.ChatResponse{Response: reply})
}
