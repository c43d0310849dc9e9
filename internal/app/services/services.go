package services

import (
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService               AuthService
	AdminService              AdminService
	UserService               UserService
	VenueService              VenueService
	InstructorService         InstructorService
	CourseService             CourseService
	RegistrationService       RegistrationService
	EventService              EventService
	BlogService               BlogService
	DeliveryModeService       LookupService
	EventTypeService          LookupService
	RegistrationStatusService LookupService
}

// NewServices wires all services onto the repository container
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.AdminRepository, jwtService),
		AdminService:      NewAdminService(repos.AdminRepository),
		UserService:       NewUserService(repos.UserRepository),
		VenueService:      NewVenueService(repos.VenueRepository),
		InstructorService: NewInstructorService(repos.InstructorRepository),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.DeliveryModeRepository,
			repos.VenueRepository,
			repos.InstructorRepository,
		),
		RegistrationService: NewRegistrationService(
			repos.RegistrationRepository,
			repos.CourseRepository,
			repos.UserRepository,
			repos.RegistrationStatusRepository,
		),
		EventService: NewEventService(
			repos.EventRepository,
			repos.EventTypeRepository,
			repos.DeliveryModeRepository,
			repos.VenueRepository,
		),
		BlogService:               NewBlogService(repos.BlogRepository, repos.AdminRepository),
		DeliveryModeService:       NewLookupService(repos.DeliveryModeRepository),
		EventTypeService:          NewLookupService(repos.EventTypeRepository),
		RegistrationStatusService: NewLookupService(repos.RegistrationStatusRepository),
	}
}
