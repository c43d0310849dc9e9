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

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const adminColumns = "id, email, full_name, password_hash, is_active, created_at, updated_at"

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(
		&admin.ID, &admin.Email, &admin.FullName, &admin.PasswordHash,
		&admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("email", "full_name", "password_hash", "is_active").
		Values(admin.Email, admin.FullName, admin.PasswordHash, admin.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_admin_email") {
			return 0, apperrors.NewConflictError("email already exists")
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return admin.ID, nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves an admin by exact email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *AdminRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns).
		From("admins").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}

	return admin, nil
}

// List retrieves all admin accounts
func (r *AdminRepository) List(ctx context.Context, params ListParams) ([]*models.Admin, error) {
	allowed := map[string]string{
		"id":        "id",
		"email":     "email",
		"fullName":  "full_name",
		"createdAt": "created_at",
	}

	builder := r.sb.Select(adminColumns).
		From("admins").
		OrderBy(params.orderBy(allowed, "email")).
		Limit(params.limit()).
		Offset(params.Offset)

	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"full_name": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list admins query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.Admin{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning admin row: %w", err)
		}
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

// AdminUpdate carries the mutable admin fields. Nil fields keep their
// current value.
type AdminUpdate struct {
	Email        *string
	FullName     *string
	PasswordHash *string
	IsActive     *bool
}

// Update applies a partial update to an admin account
func (r *AdminRepository) Update(ctx context.Context, id int64, update AdminUpdate) error {
	set := map[string]interface{}{
		"updated_at": squirrel.Expr("CURRENT_TIMESTAMP"),
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.FullName != nil {
		set["full_name"] = *update.FullName
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	sql, args, err := r.sb.Update("admins").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_admin_email") {
			return apperrors.NewConflictError("email already exists")
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error executing update admin query")
		return fmt.Errorf("error updating admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete deletes an admin account. Blog posts authored by the admin
// block the delete through the ON DELETE RESTRICT constraint.
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admin query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewRestrictedDeleteError("admin has authored blog posts")
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error executing delete admin query")
		return fmt.Errorf("error deleting admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Exists reports whether an admin with the id exists
func (r *AdminRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build admin exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

// EmailExists reports whether an admin with the exact email exists
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build admin email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}

	return exists, nil
}
