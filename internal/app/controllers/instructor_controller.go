package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

func instructorFromRequest(req *dto.InstructorRequest) *models.Instructor {
	return &models.Instructor{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Bio:      req.Bio,
	}
}

// Create handles instructor creation
// @Summary Create a new instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=models.Instructor} "Instructor created"
// @Failure 409 {object} dto.ErrorResponse "Email or phone already exists"
// @Router /instructors [post]
func (c *InstructorController) Create(ctx *gin.Context) {
	var req dto.InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid instructor data", err)
		return
	}

	instructor := instructorFromRequest(&req)
	id, err := c.instructorService.CreateInstructor(ctx, instructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	instructor.ID = id
	respondData(ctx, http.StatusCreated, instructor)
}

// GetByID retrieves an instructor by ID
// @Summary Get instructor details
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=models.Instructor} "Instructor retrieved"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, instructor)
}

// List retrieves instructors
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Param q query string false "Name filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Instructor} "Instructors retrieved"
// @Router /instructors [get]
func (c *InstructorController) List(ctx *gin.Context) {
	instructors, err := c.instructorService.GetInstructors(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, instructors)
}

// Update updates an existing instructor
// @Summary Update an instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Param request body dto.InstructorRequest true "Instructor information"
// @Success 200 {object} dto.APIResponse{data=models.Instructor} "Instructor updated"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [put]
func (c *InstructorController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid instructor data", err)
		return
	}

	instructor := instructorFromRequest(&req)
	instructor.ID = id
	if err := c.instructorService.UpdateInstructor(ctx, instructor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, instructor)
}

// Delete deletes an instructor along with their course assignments
// @Summary Delete an instructor
// @Tags instructors
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 204 "Instructor deleted"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id} [delete]
func (c *InstructorController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
