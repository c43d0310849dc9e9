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
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
)

// VenueRepository handles venue database operations
type VenueRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVenueRepository creates a new VenueRepository
func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const venueColumns = "id, name, address, map_url, notes, room_capacity"

func scanVenue(row pgx.Row) (*models.Venue, error) {
	venue := &models.Venue{}
	err := row.Scan(&venue.ID, &venue.Name, &venue.Address, &venue.MapURL, &venue.Notes, &venue.RoomCapacity)
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// Create inserts a new venue
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) (int64, error) {
	sql, args, err := r.sb.Insert("venues").
		Columns("name", "address", "map_url", "notes", "room_capacity").
		Values(venue.Name, venue.Address, venue.MapURL, venue.Notes, venue.RoomCapacity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create venue query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create venue query")
		return 0, fmt.Errorf("error creating venue: %w", err)
	}

	return id, nil
}

// GetByID retrieves a venue by ID
func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	sql, args, err := r.sb.Select(venueColumns).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get venue query: %w", err)
	}

	venue, err := scanVenue(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("venueID", id).Msg("Error scanning venue row")
		return nil, fmt.Errorf("error getting venue by ID: %w", err)
	}

	return venue, nil
}

// List retrieves venues with optional name filter
func (r *VenueRepository) List(ctx context.Context, params ListParams) ([]*models.Venue, error) {
	allowed := map[string]string{
		"id":           "id",
		"name":         "name",
		"roomCapacity": "room_capacity",
	}

	builder := r.sb.Select(venueColumns).
		From("venues").
		OrderBy(params.orderBy(allowed, "name")).
		Limit(params.limit()).
		Offset(params.Offset)

	if params.Query != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + params.Query + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list venues query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying venues: %w", err)
	}
	defer rows.Close()

	venues := []*models.Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning venue row: %w", err)
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}

// Update updates an existing venue
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	sql, args, err := r.sb.Update("venues").
		SetMap(map[string]interface{}{
			"name":          venue.Name,
			"address":       venue.Address,
			"map_url":       venue.MapURL,
			"notes":         venue.Notes,
			"room_capacity": venue.RoomCapacity,
			"updated_at":    squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": venue.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update venue query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("venueID", venue.ID).Msg("Error executing update venue query")
		return fmt.Errorf("error updating venue: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a venue. Courses and events pointing at it get their
// venue_id nulled out first; everything happens in one transaction.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"courses", "events"} {
		sql, args, err := r.sb.Update(table).
			Set("venue_id", nil).
			Where(squirrel.Eq{"venue_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build detach query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error detaching venue from %s: %w", table, err)
		}
	}

	sql, args, err := r.sb.Delete("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete venue query: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("venueID", id).Msg("Error executing delete venue query")
		return fmt.Errorf("error deleting venue: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return tx.Commit(ctx)
}

// Exists reports whether a venue with the id exists
func (r *VenueRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("venues").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build venue exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking venue existence: %w", err)
	}

	return exists, nil
}
