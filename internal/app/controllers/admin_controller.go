package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// AdminController handles admin account management
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Create handles admin account creation
// @Summary Create an admin account
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminCreateRequest true "Admin information"
// @Success 201 {object} dto.APIResponse "Admin created"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admins [post]
func (c *AdminController) Create(ctx *gin.Context) {
	var req dto.AdminCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid admin data", err)
		return
	}

	admin, err := c.adminService.CreateAdmin(ctx, req.Email, req.FullName, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, admin)
}

// GetByID retrieves an admin account
// @Summary Get admin details
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse "Admin retrieved"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, admin)
}

// List retrieves admin accounts
// @Summary List admin accounts
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Admins retrieved"
// @Router /admins [get]
func (c *AdminController) List(ctx *gin.Context) {
	admins, err := c.adminService.GetAdmins(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, admins)
}

// Update applies a partial update to an admin account
// @Summary Update an admin account
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.AdminUpdateRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Admin updated"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admins/{id} [patch]
func (c *AdminController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid admin data", err)
		return
	}

	if err := c.adminService.UpdateAdmin(ctx, id, req.Email, req.FullName, req.Password, req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, admin)
}

// Delete deletes an admin account
// @Summary Delete an admin account
// @Tags admins
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 204 "Admin deleted"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 409 {object} dto.ErrorResponse "Admin has authored blog posts"
// @Router /admins/{id} [delete]
func (c *AdminController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteAdmin(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
