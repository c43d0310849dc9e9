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

// CourseRepository handles database operations for courses and the
// course_instructors join relation.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Joined read: course columns plus the delivery mode row and the
// optional venue row. Instructors are loaded by a second query.
const courseJoinedColumns = `c.id, c.title, c.description, c.delivery_mode_id, c.venue_id,
	c.capacity, c.session_counts, c.session_duration_minutes, c.start_date, c.end_date,
	dm.label, dm.description,
	v.id, v.name, v.address, v.map_url, v.notes, v.room_capacity`

func scanCourseJoined(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	mode := &models.Lookup{}

	var venueID *int64
	var venueName *string
	var venueAddress, venueMapURL, venueNotes *string
	var venueRoomCapacity *int32

	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.DeliveryModeID, &course.VenueID,
		&course.Capacity, &course.SessionCounts, &course.SessionDurationMinutes, &course.StartDate, &course.EndDate,
		&mode.Label, &mode.Description,
		&venueID, &venueName, &venueAddress, &venueMapURL, &venueNotes, &venueRoomCapacity,
	)
	if err != nil {
		return nil, err
	}

	mode.ID = course.DeliveryModeID
	course.DeliveryMode = mode

	if venueID != nil {
		course.Venue = &models.Venue{
			ID:           *venueID,
			Name:         *venueName,
			Address:      venueAddress,
			MapURL:       venueMapURL,
			Notes:        venueNotes,
			RoomCapacity: venueRoomCapacity,
		}
	}

	return course, nil
}

func (r *CourseRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(courseJoinedColumns).
		From("courses c").
		Join("delivery_modes dm ON dm.id = c.delivery_mode_id").
		LeftJoin("venues v ON v.id = c.venue_id")
}

// Create inserts a course and its instructor assignments in one
// transaction. Foreign key violations surface as reference errors.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course, instructorIDs []int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "delivery_mode_id", "venue_id",
			"capacity", "session_counts", "session_duration_minutes", "start_date", "end_date").
		Values(course.Title, course.Description, course.DeliveryModeID, course.VenueID,
			course.Capacity, course.SessionCounts, course.SessionDurationMinutes, course.StartDate, course.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := tx.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewReferenceError("referenced delivery mode or venue does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	if err := r.insertInstructors(ctx, tx, course.ID, instructorIDs); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing create course transaction: %w", err)
	}

	return course.ID, nil
}

func (r *CourseRepository) insertInstructors(ctx context.Context, tx pgx.Tx, courseID int64, instructorIDs []int64) error {
	if len(instructorIDs) == 0 {
		return nil
	}

	builder := r.sb.Insert("course_instructors").Columns("course_id", "instructor_id")
	for _, instructorID := range instructorIDs {
		builder = builder.Values(courseID, instructorID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign instructors query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewReferenceError("referenced instructor does not exist")
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewValidationError("instructor listed more than once")
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error assigning course instructors")
		return fmt.Errorf("error assigning instructors: %w", err)
	}

	return nil
}

// GetByID retrieves a course with its delivery mode, venue and instructors
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourseJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	if err := r.attachInstructors(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}

	return course, nil
}

// List retrieves courses with optional title filter. PastOnly restricts
// the result to courses whose end date is before today.
func (r *CourseRepository) List(ctx context.Context, params ListParams, pastOnly bool) ([]*models.Course, error) {
	allowed := map[string]string{
		"id":        "c.id",
		"title":     "c.title",
		"startDate": "c.start_date",
		"endDate":   "c.end_date",
	}

	builder := r.joinedSelect().
		OrderBy(params.orderBy(allowed, "c.title")).
		Limit(params.limit()).
		Offset(params.Offset)

	if params.Query != "" {
		builder = builder.Where(squirrel.ILike{"c.title": "%" + params.Query + "%"})
	}
	if pastOnly {
		builder = builder.Where(squirrel.Expr("c.end_date < CURRENT_DATE"))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourseJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachInstructors(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// attachInstructors loads the instructors for all given courses in a
// single query and distributes them by course id.
func (r *CourseRepository) attachInstructors(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(courses))
	byID := make(map[int64]*models.Course, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
		byID[course.ID] = course
		course.Instructors = []*models.Instructor{}
	}

	sql, args, err := r.sb.Select("ci.course_id, i.id, i.full_name, i.phone, i.email, i.bio").
		From("course_instructors ci").
		Join("instructors i ON i.id = ci.instructor_id").
		Where(squirrel.Eq{"ci.course_id": ids}).
		OrderBy("i.full_name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build course instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error querying course instructors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID int64
		instructor := &models.Instructor{}
		err := rows.Scan(&courseID, &instructor.ID, &instructor.FullName,
			&instructor.Phone, &instructor.Email, &instructor.Bio)
		if err != nil {
			return fmt.Errorf("error scanning course instructor row: %w", err)
		}
		if course, ok := byID[courseID]; ok {
			course.Instructors = append(course.Instructors, instructor)
		}
	}

	return rows.Err()
}

// Update updates a course and replaces its instructor assignments in
// one transaction.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course, instructorIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"title":                    course.Title,
			"description":              course.Description,
			"delivery_mode_id":         course.DeliveryModeID,
			"venue_id":                 course.VenueID,
			"capacity":                 course.Capacity,
			"session_counts":           course.SessionCounts,
			"session_duration_minutes": course.SessionDurationMinutes,
			"start_date":               course.StartDate,
			"end_date":                 course.EndDate,
			"updated_at":               squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewReferenceError("referenced delivery mode or venue does not exist")
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	deleteSQL, deleteArgs, err := r.sb.Delete("course_instructors").
		Where(squirrel.Eq{"course_id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear instructors query: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error clearing course instructors")
		return fmt.Errorf("error clearing instructors: %w", err)
	}

	if err := r.insertInstructors(ctx, tx, course.ID, instructorIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing update course transaction: %w", err)
	}

	return nil
}

// Delete deletes a course. Registrations and instructor assignments are
// removed by their ON DELETE CASCADE constraints.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Exists reports whether a course with the id exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}
