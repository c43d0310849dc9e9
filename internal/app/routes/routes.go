package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/controllers"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// SetupRouter configures all application routes. Reads on the catalog
// (courses, events, venues, instructors, lookups, published blog posts)
// are public; every mutation and the back-office surface require an
// admin bearer token.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	healthz := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthz)

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthz)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.AuthController.Login)
	}

	// --- Public catalog reads ---
	v1.GET("/courses", ctrl.CourseController.List)
	v1.GET("/courses/:id", ctrl.CourseController.GetByID)

	v1.GET("/events", ctrl.EventController.List)
	v1.GET("/events/:id", ctrl.EventController.GetByID)

	v1.GET("/venues", ctrl.VenueController.List)
	v1.GET("/venues/:id", ctrl.VenueController.GetByID)

	v1.GET("/instructors", ctrl.InstructorController.List)
	v1.GET("/instructors/:id", ctrl.InstructorController.GetByID)

	v1.GET("/delivery-modes", ctrl.DeliveryModeController.List)
	v1.GET("/delivery-modes/:id", ctrl.DeliveryModeController.GetByID)
	v1.GET("/event-types", ctrl.EventTypeController.List)
	v1.GET("/event-types/:id", ctrl.EventTypeController.GetByID)
	v1.GET("/registration-statuses", ctrl.RegStatusController.List)
	v1.GET("/registration-statuses/:id", ctrl.RegStatusController.GetByID)

	v1.GET("/blog/posts", ctrl.BlogController.ListPublished)
	v1.GET("/blog/posts/:slug", ctrl.BlogController.GetBySlug)

	// --- Admin-protected routes ---
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAdmin())
	{
		protected.POST("/courses", ctrl.CourseController.Create)
		protected.PUT("/courses/:id", ctrl.CourseController.Update)
		protected.DELETE("/courses/:id", ctrl.CourseController.Delete)

		protected.POST("/events", ctrl.EventController.Create)
		protected.PUT("/events/:id", ctrl.EventController.Update)
		protected.DELETE("/events/:id", ctrl.EventController.Delete)

		protected.POST("/venues", ctrl.VenueController.Create)
		protected.PUT("/venues/:id", ctrl.VenueController.Update)
		protected.DELETE("/venues/:id", ctrl.VenueController.Delete)

		protected.POST("/instructors", ctrl.InstructorController.Create)
		protected.PUT("/instructors/:id", ctrl.InstructorController.Update)
		protected.DELETE("/instructors/:id", ctrl.InstructorController.Delete)

		protected.POST("/delivery-modes", ctrl.DeliveryModeController.Create)
		protected.PUT("/delivery-modes/:id", ctrl.DeliveryModeController.Update)
		protected.DELETE("/delivery-modes/:id", ctrl.DeliveryModeController.Delete)

		protected.POST("/event-types", ctrl.EventTypeController.Create)
		protected.PUT("/event-types/:id", ctrl.EventTypeController.Update)
		protected.DELETE("/event-types/:id", ctrl.EventTypeController.Delete)

		protected.POST("/registration-statuses", ctrl.RegStatusController.Create)
		protected.PUT("/registration-statuses/:id", ctrl.RegStatusController.Update)
		protected.DELETE("/registration-statuses/:id", ctrl.RegStatusController.Delete)

		// Attendants and their registrations are back-office data
		protected.POST("/users", ctrl.UserController.Create)
		protected.GET("/users", ctrl.UserController.List)
		protected.GET("/users/:id", ctrl.UserController.GetByID)
		protected.PUT("/users/:id", ctrl.UserController.Update)
		protected.DELETE("/users/:id", ctrl.UserController.Delete)

		protected.POST("/registrations", ctrl.RegistrationController.Create)
		protected.GET("/registrations", ctrl.RegistrationController.List)
		protected.GET("/registrations/:id", ctrl.RegistrationController.GetByID)
		protected.PATCH("/registrations/:id/status", ctrl.RegistrationController.UpdateStatus)
		protected.DELETE("/registrations/:id", ctrl.RegistrationController.Delete)

		protected.POST("/blog/posts", ctrl.BlogController.Create)
		protected.GET("/admin/blog/posts", ctrl.BlogController.ListAll)
		protected.PUT("/blog/posts/:id", ctrl.BlogController.Update)
		protected.DELETE("/blog/posts/:id", ctrl.BlogController.Delete)

		protected.POST("/admins", ctrl.AdminController.Create)
		protected.GET("/admins", ctrl.AdminController.List)
		protected.GET("/admins/:id", ctrl.AdminController.GetByID)
		protected.PATCH("/admins/:id", ctrl.AdminController.Update)
		protected.DELETE("/admins/:id", ctrl.AdminController.Delete)
	}
}
