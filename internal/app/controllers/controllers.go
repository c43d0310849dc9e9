package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController         *AuthController
	AdminController        *AdminController
	UserController         *UserController
	VenueController        *VenueController
	InstructorController   *InstructorController
	CourseController       *CourseController
	RegistrationController *RegistrationController
	EventController        *EventController
	BlogController         *BlogController
	DeliveryModeController *LookupController
	EventTypeController    *LookupController
	RegStatusController    *LookupController
}

// NewControllers wires all controllers onto the service container
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svcs.AuthService),
		AdminController:        NewAdminController(svcs.AdminService),
		UserController:         NewUserController(svcs.UserService),
		VenueController:        NewVenueController(svcs.VenueService),
		InstructorController:   NewInstructorController(svcs.InstructorService),
		CourseController:       NewCourseController(svcs.CourseService),
		RegistrationController: NewRegistrationController(svcs.RegistrationService),
		EventController:        NewEventController(svcs.EventService),
		BlogController:         NewBlogController(svcs.BlogService),
		DeliveryModeController: NewLookupController(svcs.DeliveryModeService, "delivery mode"),
		EventTypeController:    NewLookupController(svcs.EventTypeService, "event type"),
		RegStatusController:    NewLookupController(svcs.RegistrationStatusService, "registration status"),
	}
}

// parseIDParam reads the :id path parameter. On failure it writes a 400
// response and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// listParamsFromQuery reads the common list query parameters
// (q, sort, dir, limit, offset).
func listParamsFromQuery(ctx *gin.Context) repositories.ListParams {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	offset, _ := strconv.ParseUint(ctx.DefaultQuery("offset", "0"), 10, 64)

	return repositories.ListParams{
		Sort:   ctx.Query("sort"),
		Order:  ctx.DefaultQuery("dir", "asc"),
		Query:  ctx.Query("q"),
		Limit:  limit,
		Offset: offset,
	}
}

func respondBadRequest(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	if err != nil {
		errorDetail = errorDetail.WithDetails(err.Error())
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}
