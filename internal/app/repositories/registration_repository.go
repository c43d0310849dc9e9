package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/dberrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
)

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const registrationJoinedColumns = `r.id, r.course_id, r.user_id, r.status_id, r.submitted_at, r.updated_at,
	rs.label, rs.description`

func scanRegistrationJoined(row pgx.Row) (*models.Registration, error) {
	registration := &models.Registration{}
	status := &models.Lookup{}

	err := row.Scan(
		&registration.ID, &registration.CourseID, &registration.UserID, &registration.StatusID,
		&registration.SubmittedAt, &registration.UpdatedAt,
		&status.Label, &status.Description,
	)
	if err != nil {
		return nil, err
	}

	status.ID = registration.StatusID
	registration.Status = status
	return registration, nil
}

func (r *RegistrationRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(registrationJoinedColumns).
		From("registrations r").
		Join("registration_statuses rs ON rs.id = r.status_id")
}

// Create inserts a new registration. The unique (course, user)
// constraint turns a second registration for the same pair into a
// conflict error regardless of status.
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration) (int64, error) {
	sql, args, err := r.sb.Insert("registrations").
		Columns("course_id", "user_id", "status_id").
		Values(registration.CourseID, registration.UserID, registration.StatusID).
		Suffix("RETURNING id, submitted_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create registration query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&registration.ID, &registration.SubmittedAt, &registration.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_registration_course_user") {
			return 0, apperrors.NewConflictError("user is already registered for this course")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewReferenceError("referenced course, user or status does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create registration query")
		return 0, fmt.Errorf("error creating registration: %w", err)
	}

	return registration.ID, nil
}

// GetByID retrieves a registration with its status row
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get registration query: %w", err)
	}

	registration, err := scanRegistrationJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("registrationID", id).Msg("Error scanning registration row")
		return nil, fmt.Errorf("error getting registration by ID: %w", err)
	}

	return registration, nil
}

// RegistrationFilter narrows List results. Zero values mean no filtering.
type RegistrationFilter struct {
	CourseID int64
	UserID   int64
	StatusID int64
}

// List retrieves registrations, optionally filtered by course, user or status
func (r *RegistrationRepository) List(ctx context.Context, params ListParams, filter RegistrationFilter) ([]*models.Registration, error) {
	allowed := map[string]string{
		"id":          "r.id",
		"submittedAt": "r.submitted_at",
	}

	builder := r.joinedSelect().
		OrderBy(params.orderBy(allowed, "r.submitted_at")).
		Limit(params.limit()).
		Offset(params.Offset)

	if filter.CourseID != 0 {
		builder = builder.Where(squirrel.Eq{"r.course_id": filter.CourseID})
	}
	if filter.UserID != 0 {
		builder = builder.Where(squirrel.Eq{"r.user_id": filter.UserID})
	}
	if filter.StatusID != 0 {
		builder = builder.Where(squirrel.Eq{"r.status_id": filter.StatusID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list registrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying registrations: %w", err)
	}
	defer rows.Close()

	registrations := []*models.Registration{}
	for rows.Next() {
		registration, err := scanRegistrationJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning registration row: %w", err)
		}
		registrations = append(registrations, registration)
	}

	return registrations, rows.Err()
}

// UpdateStatus moves a registration to a new status
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id, statusID int64) error {
	sql, args, err := r.sb.Update("registrations").
		SetMap(map[string]interface{}{
			"status_id":  statusID,
			"updated_at": squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update registration status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewReferenceError("referenced status does not exist")
		}
		logger.Error().Err(err).Int64("registrationID", id).Msg("Error executing update registration status query")
		return fmt.Errorf("error updating registration status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete deletes a registration
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete registration query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("registrationID", id).Msg("Error executing delete registration query")
		return fmt.Errorf("error deleting registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// PairExists reports whether the (course, user) pair already has a registration
func (r *RegistrationRepository) PairExists(ctx context.Context, courseID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("registrations").
		Where(squirrel.Eq{"course_id": courseID, "user_id": userID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build registration pair exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking registration pair: %w", err)
	}

	return exists, nil
}
