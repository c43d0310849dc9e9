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

// LookupRepository handles database operations for one of the reference
// tables (delivery_modes, event_types, registration_statuses). The same
// implementation serves all three since they share a shape.
type LookupRepository struct {
	db   *pgxpool.Pool
	sb   squirrel.StatementBuilderType
	kind models.LookupKind
}

// NewLookupRepository creates a repository bound to one reference table
func NewLookupRepository(db *pgxpool.Pool, kind models.LookupKind) *LookupRepository {
	return &LookupRepository{
		db:   db,
		sb:   statementBuilder(),
		kind: kind,
	}
}

// Kind returns the reference table this repository is bound to
func (r *LookupRepository) Kind() models.LookupKind {
	return r.kind
}

// Create inserts a new reference row
func (r *LookupRepository) Create(ctx context.Context, row *models.Lookup) (int64, error) {
	sql, args, err := r.sb.Insert(r.kind.Table()).
		Columns("label", "description").
		Values(row.Label, row.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("label already exists")
		}
		logger.Error().Err(err).Str("table", r.kind.Table()).Msg("Error inserting lookup row")
		return 0, fmt.Errorf("error creating %s row: %w", r.kind, err)
	}

	return id, nil
}

// GetByID retrieves a reference row by ID
func (r *LookupRepository) GetByID(ctx context.Context, id int64) (*models.Lookup, error) {
	sql, args, err := r.sb.Select("id", "label", "description").
		From(r.kind.Table()).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	row := &models.Lookup{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&row.ID, &row.Label, &row.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("table", r.kind.Table()).Int64("id", id).Msg("Error scanning lookup row")
		return nil, fmt.Errorf("error getting %s row: %w", r.kind, err)
	}

	return row, nil
}

// GetByLabel retrieves a reference row by exact label match. The match is
// case sensitive; seeding depends on that.
func (r *LookupRepository) GetByLabel(ctx context.Context, label string) (*models.Lookup, error) {
	sql, args, err := r.sb.Select("id", "label", "description").
		From(r.kind.Table()).
		Where(squirrel.Eq{"label": label}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	row := &models.Lookup{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&row.ID, &row.Label, &row.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting %s row by label: %w", r.kind, err)
	}

	return row, nil
}

// List retrieves reference rows with optional label filter
func (r *LookupRepository) List(ctx context.Context, params ListParams) ([]*models.Lookup, error) {
	allowed := map[string]string{
		"id":    "id",
		"label": "label",
	}

	builder := r.sb.Select("id", "label", "description").
		From(r.kind.Table()).
		OrderBy(params.orderBy(allowed, "label")).
		Limit(params.limit()).
		Offset(params.Offset)

	if params.Query != "" {
		builder = builder.Where(squirrel.ILike{"label": "%" + params.Query + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s rows: %w", r.kind, err)
	}
	defer rows.Close()

	result := []*models.Lookup{}
	for rows.Next() {
		row := &models.Lookup{}
		if err := rows.Scan(&row.ID, &row.Label, &row.Description); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", r.kind, err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// Update updates an existing reference row
func (r *LookupRepository) Update(ctx context.Context, row *models.Lookup) error {
	sql, args, err := r.sb.Update(r.kind.Table()).
		SetMap(map[string]interface{}{
			"label":       row.Label,
			"description": row.Description,
			"updated_at":  squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": row.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("label already exists")
		}
		logger.Error().Err(err).Str("table", r.kind.Table()).Int64("id", row.ID).Msg("Error updating lookup row")
		return fmt.Errorf("error updating %s row: %w", r.kind, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete deletes a reference row. The delete is refused while any entity
// still references the row; the database RESTRICT constraint is the
// source of truth.
func (r *LookupRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(r.kind.Table()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewRestrictedDeleteError(fmt.Sprintf("%s row is still referenced", r.kind))
		}
		logger.Error().Err(err).Str("table", r.kind.Table()).Int64("id", id).Msg("Error deleting lookup row")
		return fmt.Errorf("error deleting %s row: %w", r.kind, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Exists reports whether a reference row with the id exists
func (r *LookupRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From(r.kind.Table()).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking %s existence: %w", r.kind, err)
	}

	return exists, nil
}
