package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// RegistrationController handles registration operations
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Create registers a user for a course
// @Summary Create a registration
// @Description Registers a user for a course. A user may hold at most one registration per course.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegistrationRequest true "Registration information"
// @Success 201 {object} dto.APIResponse "Registration created"
// @Failure 409 {object} dto.ErrorResponse "User is already registered for this course"
// @Failure 422 {object} dto.ErrorResponse "Referenced course, user or status does not exist"
// @Router /registrations [post]
func (c *RegistrationController) Create(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid registration data", err)
		return
	}

	registration := &models.Registration{
		CourseID: req.CourseID,
		UserID:   req.UserID,
		StatusID: req.StatusID,
	}

	id, err := c.registrationService.CreateRegistration(ctx, registration)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.registrationService.GetRegistrationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, created)
}

// GetByID retrieves a registration
// @Summary Get registration details
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse "Registration retrieved"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	registration, err := c.registrationService.GetRegistrationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, registration)
}

// List retrieves registrations, optionally filtered by course, user or status
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Course filter"
// @Param userId query int false "User filter"
// @Param statusId query int false "Status filter"
// @Success 200 {object} dto.APIResponse "Registrations retrieved"
// @Router /registrations [get]
func (c *RegistrationController) List(ctx *gin.Context) {
	filter := repositories.RegistrationFilter{}
	filter.CourseID, _ = strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	filter.UserID, _ = strconv.ParseInt(ctx.Query("userId"), 10, 64)
	filter.StatusID, _ = strconv.ParseInt(ctx.Query("statusId"), 10, 64)

	registrations, err := c.registrationService.GetRegistrations(ctx, listParamsFromQuery(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, registrations)
}

// UpdateStatus moves a registration to a new status
// @Summary Update registration status
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body dto.RegistrationStatusUpdateRequest true "New status"
// @Success 200 {object} dto.APIResponse "Registration updated"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 422 {object} dto.ErrorResponse "Referenced status does not exist"
// @Router /registrations/{id}/status [patch]
func (c *RegistrationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RegistrationStatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid status data", err)
		return
	}

	if err := c.registrationService.UpdateRegistrationStatus(ctx, id, req.StatusID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.registrationService.GetRegistrationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, updated)
}

// Delete deletes a registration
// @Summary Delete a registration
// @Tags registrations
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 204 "Registration deleted"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.registrationService.DeleteRegistration(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
