package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/request"
	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
	"github.com/mil-can/milcan-api/internal/domain"
	"github.com/mil-can/milcan-api/internal/service"
)

type ContentService interface {
	CreateContent(ctx context.Context, content domain.Content) (domain.Content, error)
	GetContentByUser(ctx context.Context, userID uint) ([]domain.Content, error)
	UpdateEngagement(ctx context.Context, contentID, userID uint, views, likes, comments *int) error
}

type ContentHandler struct {
	svc  ContentService
	uSvc UserService
}

func NewContentHandler(svc ContentService, uSvc UserService) *ContentHandler {
	return &ContentHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateContent godoc
// @Summary      Submit a content piece
// @Description  Creates content for the caller, grants points, evaluates badges and refreshes statistics.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateContentRequest  true  "Content details"
// @Success      201    {object}  domain.Content
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /content [post]
// @Security BearerAuth
func (h *ContentHandler) HandleCreateContent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateContentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateContent(ctx.Request.Context(), domain.Content{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		ContentURL:  input.ContentURL,
		Views:       input.Views,
		Likes:       input.Likes,
		Comments:    input.Comments,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateContent -> h.svc.CreateContent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetUserContent godoc
// @Summary      List the caller's content
// @Description  Returns the caller's content pieces, newest first.
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Content
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /content/user [get]
// @Security BearerAuth
func (h *ContentHandler) HandleGetUserContent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	contents, err := h.svc.GetContentByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUserContent -> h.svc.GetContentByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, contents)
}

// HandleUpdateContentStats godoc
// @Summary      Update engagement counters on own content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        contentID  path      int                                true  "Content ID"
// @Param        input      body      request.UpdateContentStatsRequest  true  "Counters to overwrite"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /content/{contentID}/stats [patch]
// @Security BearerAuth
func (h *ContentHandler) HandleUpdateContentStats(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	contentID, err := strconv.ParseUint(ctx.Param("contentID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid content ID: %v", err)))
		return
	}

	var input request.UpdateContentStatsRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err = h.svc.UpdateEngagement(ctx.Request.Context(), uint(contentID), user.ID, input.Views, input.Likes, input.Comments)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("content", "ID", contentID))
			return
		}
		if errors.Is(err, service.ErrNotContentOwner) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotContentOwner))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateContentStats -> h.svc.UpdateEngagement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
