package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// VenueController handles venue-related operations
type VenueController struct {
	venueService services.VenueService
}

// NewVenueController creates a new VenueController
func NewVenueController(venueService services.VenueService) *VenueController {
	return &VenueController{
		venueService: venueService,
	}
}

func venueFromRequest(req *dto.VenueRequest) *models.Venue {
	return &models.Venue{
		Name:         req.Name,
		Address:      req.Address,
		MapURL:       req.MapURL,
		Notes:        req.Notes,
		RoomCapacity: req.RoomCapacity,
	}
}

// Create handles venue creation
// @Summary Create a new venue
// @Description Creates a new venue with the provided information
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VenueRequest true "Venue information"
// @Success 201 {object} dto.APIResponse{data=models.Venue} "Venue created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /venues [post]
func (c *VenueController) Create(ctx *gin.Context) {
	var req dto.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid venue data", err)
		return
	}

	venue := venueFromRequest(&req)
	id, err := c.venueService.CreateVenue(ctx, venue)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	venue.ID = id
	respondData(ctx, http.StatusCreated, venue)
}

// GetByID retrieves a venue by ID
// @Summary Get venue details
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} dto.APIResponse{data=models.Venue} "Venue retrieved"
// @Failure 404 {object} dto.ErrorResponse "Venue not found"
// @Router /venues/{id} [get]
func (c *VenueController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	venue, err := c.venueService.GetVenueByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, venue)
}

// List retrieves venues
// @Summary List venues
// @Tags venues
// @Produce json
// @Param q query string false "Name filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Venue} "Venues retrieved"
// @Router /venues [get]
func (c *VenueController) List(ctx *gin.Context) {
	venues, err := c.venueService.GetVenues(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, venues)
}

// Update updates an existing venue
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Venue ID"
// @Param request body dto.VenueRequest true "Venue information"
// @Success 200 {object} dto.APIResponse{data=models.Venue} "Venue updated"
// @Failure 404 {object} dto.ErrorResponse "Venue not found"
// @Router /venues/{id} [put]
func (c *VenueController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid venue data", err)
		return
	}

	venue := venueFromRequest(&req)
	venue.ID = id
	if err := c.venueService.UpdateVenue(ctx, venue); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, venue)
}

// Delete deletes a venue. Courses and events that referenced it stay
// alive with the venue reference cleared.
// @Summary Delete a venue
// @Tags venues
// @Security BearerAuth
// @Param id path int true "Venue ID"
// @Success 204 "Venue deleted"
// @Failure 404 {object} dto.ErrorResponse "Venue not found"
// @Router /venues/{id} [delete]
func (c *VenueController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.venueService.DeleteVenue(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
