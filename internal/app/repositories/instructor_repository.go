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

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const instructorColumns = "id, full_name, phone, email, bio"

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	err := row.Scan(
		&instructor.ID,
		&instructor.FullName,
		&instructor.Phone,
		&instructor.Email,
		&instructor.Bio,
	)
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

func translateInstructorConstraint(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "uq_instructor_email"):
		return apperrors.NewConflictError("email already exists")
	case dberrors.IsDuplicateConstraintError(err, "uq_instructor_phone"):
		return apperrors.NewConflictError("phone already exists")
	}
	return nil
}

// Create inserts a new instructor
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	sql, args, err := r.sb.Insert("instructors").
		Columns("full_name", "phone", "email", "bio").
		Values(instructor.FullName, instructor.Phone, instructor.Email, instructor.Bio).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create instructor query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&instructor.ID)
	if err != nil {
		if translated := translateInstructorConstraint(err); translated != nil {
			return 0, translated
		}
		logger.Error().Err(err).Msg("Error executing create instructor query")
		return 0, fmt.Errorf("error creating instructor: %w", err)
	}

	return instructor.ID, nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	instructor, err := scanInstructor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error scanning instructor row")
		return nil, fmt.Errorf("error getting instructor by ID: %w", err)
	}

	return instructor, nil
}

// List retrieves instructors with optional name filter
func (r *InstructorRepository) List(ctx context.Context, params ListParams) ([]*models.Instructor, error) {
	allowed := map[string]string{
		"id":        "id",
		"fullName":  "full_name",
		"email":     "email",
		"createdAt": "created_at",
	}

	builder := r.sb.Select(instructorColumns).
		From("instructors").
		OrderBy(params.orderBy(allowed, "full_name")).
		Limit(params.limit()).
		Offset(params.Offset)

	if params.Query != "" {
		builder = builder.Where(squirrel.ILike{"full_name": "%" + params.Query + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	return instructors, rows.Err()
}

// Update updates an existing instructor
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Update("instructors").
		SetMap(map[string]interface{}{
			"full_name":  instructor.FullName,
			"phone":      instructor.Phone,
			"email":      instructor.Email,
			"bio":        instructor.Bio,
			"updated_at": squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": instructor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if translated := translateInstructorConstraint(err); translated != nil {
			return translated
		}
		logger.Error().Err(err).Int64("instructorID", instructor.ID).Msg("Error executing update instructor query")
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete deletes an instructor. Course assignments referencing the
// instructor are removed by the ON DELETE CASCADE constraint.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error executing delete instructor query")
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Exists reports whether an instructor with the id exists
func (r *InstructorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build instructor exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}

	return exists, nil
}
