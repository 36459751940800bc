package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mil-can/milcan-api/internal/api/handler/v1/request"
	"github.com/mil-can/milcan-api/internal/api/handler/v1/response"
	"github.com/mil-can/milcan-api/internal/domain"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEventsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error)
	GetActiveEvents(ctx context.Context) ([]domain.Event, error)
}

type EventHandler struct {
	svc  EventService
	uSvc UserService
}

func NewEventHandler(svc EventService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateEvent godoc
// @Summary      Submit an event
// @Description  Creates an event organized by the caller, grants points, evaluates badges and refreshes statistics.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid start date: %v", err)))
		return
	}

	endDate, err := time.Parse(time.RFC3339, input.EndDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid end date: %v", err)))
		return
	}

	status := input.Status
	if status == "" {
		status = domain.EventStatusActive
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		OrganizerID:  user.ID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		StartDate:    startDate,
		EndDate:      endDate,
		Participants: input.Participants,
		Status:       status,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetUserEvents godoc
// @Summary      List the caller's events
// @Description  Returns events organized by the caller, newest first.
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/user [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetUserEvents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.GetEventsByOrganizer(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUserEvents -> h.svc.GetEventsByOrganizer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetActiveEvents godoc
// @Summary      List active events
// @Description  Returns all events with status "active", newest start date first.
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events/active [get]
func (h *EventHandler) HandleGetActiveEvents(ctx *gin.Context) {
	events, err := h.svc.GetActiveEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActiveEvents -> h.svc.GetActiveEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}
