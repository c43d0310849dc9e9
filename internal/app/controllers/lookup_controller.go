package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// LookupController serves one of the reference tables. The same
// controller backs delivery modes, event types and registration
// statuses; only the bound service differs.
type LookupController struct {
	lookupService services.LookupService
	noun          string
}

// NewLookupController creates a new LookupController for one reference table
func NewLookupController(lookupService services.LookupService, noun string) *LookupController {
	return &LookupController{
		lookupService: lookupService,
		noun:          noun,
	}
}

// Create handles reference row creation
// @Summary Create a reference row
// @Description Creates a new row in the reference table with a unique label
// @Tags lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LookupRequest true "Reference row"
// @Success 201 {object} dto.APIResponse{data=models.Lookup} "Row created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Label already exists"
func (c *LookupController) Create(ctx *gin.Context) {
	var req dto.LookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid "+c.noun+" data", err)
		return
	}

	row := &models.Lookup{Label: req.Label, Description: req.Description}
	id, err := c.lookupService.Create(ctx, row)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	row.ID = id
	respondData(ctx, http.StatusCreated, row)
}

// GetByID retrieves a reference row
func (c *LookupController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	row, err := c.lookupService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, row)
}

// List retrieves reference rows with optional label filter
func (c *LookupController) List(ctx *gin.Context) {
	rows, err := c.lookupService.List(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, rows)
}

// Update updates a reference row
func (c *LookupController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.LookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid "+c.noun+" data", err)
		return
	}

	row := &models.Lookup{ID: id, Label: req.Label, Description: req.Description}
	if err := c.lookupService.Update(ctx, row); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, row)
}

// Delete deletes a reference row. Rows still referenced by courses,
// events or registrations answer 409.
func (c *LookupController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.lookupService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
