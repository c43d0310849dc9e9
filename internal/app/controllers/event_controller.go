package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// EventController handles event-related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// Create handles event creation
// @Summary Create a new event
// @Description Creates an event with its type, delivery mode and optional venue
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventRequest true "Event information"
// @Success 201 {object} dto.APIResponse "Event created"
// @Failure 422 {object} dto.ErrorResponse "Validation failed or reference does not exist"
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid event data", err)
		return
	}

	event := req.ToModel()
	id, err := c.eventService.CreateEvent(ctx, event)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, created)
}

// GetByID retrieves an event
// @Summary Get event details
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Event retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, event)
}

// List retrieves events
// @Summary List events
// @Tags events
// @Produce json
// @Param q query string false "Title filter"
// @Success 200 {object} dto.APIResponse "Events retrieved"
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.eventService.GetEvents(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, events)
}

// Update updates an existing event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.EventRequest true "Event information"
// @Success 200 {object} dto.APIResponse "Event updated"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid event data", err)
		return
	}

	event := req.ToModel()
	event.ID = id
	if err := c.eventService.UpdateEvent(ctx, event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, updated)
}

// Delete deletes an event
// @Summary Delete an event
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204 "Event deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
