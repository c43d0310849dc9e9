package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindsethq/mindset-backend/internal/app/models"
)

// ListParams controls ordering and filtering of list queries. Sort is
// validated against a per-repository whitelist; unknown fields fall back
// to the repository default.
type ListParams struct {
	Sort   string
	Order  string
	Query  string
	Limit  int
	Offset uint64
}

// orderBy resolves the ORDER BY clause for the params against a column
// whitelist.
func (p ListParams) orderBy(allowed map[string]string, fallback string) string {
	column, ok := allowed[p.Sort]
	if !ok {
		column = fallback
	}

	direction := "ASC"
	if strings.EqualFold(p.Order, "desc") {
		direction = "DESC"
	}

	return column + " " + direction
}

// limit returns the effective page size
func (p ListParams) limit() uint64 {
	if p.Limit <= 0 {
		return 50
	}
	return uint64(p.Limit)
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository               *UserRepository
	VenueRepository              *VenueRepository
	InstructorRepository         *InstructorRepository
	CourseRepository             *CourseRepository
	RegistrationRepository       *RegistrationRepository
	EventRepository              *EventRepository
	BlogRepository               *BlogRepository
	AdminRepository              *AdminRepository
	DeliveryModeRepository       *LookupRepository
	EventTypeRepository          *LookupRepository
	RegistrationStatusRepository *LookupRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		VenueRepository:              NewVenueRepository(db),
		InstructorRepository:         NewInstructorRepository(db),
		CourseRepository:             NewCourseRepository(db),
		RegistrationRepository:       NewRegistrationRepository(db),
		EventRepository:              NewEventRepository(db),
		BlogRepository:               NewBlogRepository(db),
		AdminRepository:              NewAdminRepository(db),
		DeliveryModeRepository:       NewLookupRepository(db, models.LookupDeliveryModes),
		EventTypeRepository:          NewLookupRepository(db, models.LookupEventTypes),
		RegistrationStatusRepository: NewLookupRepository(db, models.LookupRegistrationStatuses),
	}
}
