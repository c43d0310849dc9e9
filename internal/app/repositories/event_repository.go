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

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const eventJoinedColumns = `e.id, e.title, e.description, e.event_type_id, e.delivery_mode_id, e.venue_id,
	e.capacity, e.starts_at, e.ends_at,
	et.label, et.description,
	dm.label, dm.description,
	v.id, v.name, v.address, v.map_url, v.notes, v.room_capacity`

func scanEventJoined(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	eventType := &models.Lookup{}
	mode := &models.Lookup{}

	var venueID *int64
	var venueName *string
	var venueAddress, venueMapURL, venueNotes *string
	var venueRoomCapacity *int32

	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.EventTypeID, &event.DeliveryModeID, &event.VenueID,
		&event.Capacity, &event.StartsAt, &event.EndsAt,
		&eventType.Label, &eventType.Description,
		&mode.Label, &mode.Description,
		&venueID, &venueName, &venueAddress, &venueMapURL, &venueNotes, &venueRoomCapacity,
	)
	if err != nil {
		return nil, err
	}

	eventType.ID = event.EventTypeID
	event.EventType = eventType
	mode.ID = event.DeliveryModeID
	event.DeliveryMode = mode

	if venueID != nil {
		event.Venue = &models.Venue{
			ID:           *venueID,
			Name:         *venueName,
			Address:      venueAddress,
			MapURL:       venueMapURL,
			Notes:        venueNotes,
			RoomCapacity: venueRoomCapacity,
		}
	}

	return event, nil
}

func (r *EventRepository) joinedSelect() squirrel.SelectBuilder {
	return r.sb.Select(eventJoinedColumns).
		From("events e").
		Join("event_types et ON et.id = e.event_type_id").
		Join("delivery_modes dm ON dm.id = e.delivery_mode_id").
		LeftJoin("venues v ON v.id = e.venue_id")
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "event_type_id", "delivery_mode_id", "venue_id",
			"capacity", "starts_at", "ends_at").
		Values(event.Title, event.Description, event.EventTypeID, event.DeliveryModeID, event.VenueID,
			event.Capacity, event.StartsAt, event.EndsAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&event.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewReferenceError("referenced event type, delivery mode or venue does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return event.ID, nil
}

// GetByID retrieves an event with its type, delivery mode and venue
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.joinedSelect().
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEventJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// List retrieves events with optional title filter
func (r *EventRepository) List(ctx context.Context, params ListParams) ([]*models.Event, error) {
	allowed := map[string]string{
		"id":       "e.id",
		"title":    "e.title",
		"startsAt": "e.starts_at",
	}

	builder := r.joinedSelect().
		OrderBy(params.orderBy(allowed, "e.starts_at")).
		Limit(params.limit()).
		Offset(params.Offset)

	if params.Query != "" {
		builder = builder.Where(squirrel.ILike{"e.title": "%" + params.Query + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEventJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// Update updates an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"title":            event.Title,
			"description":      event.Description,
			"event_type_id":    event.EventTypeID,
			"delivery_mode_id": event.DeliveryModeID,
			"venue_id":         event.VenueID,
			"capacity":         event.Capacity,
			"starts_at":        event.StartsAt,
			"ends_at":          event.EndsAt,
			"updated_at":       squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewReferenceError("referenced event type, delivery mode or venue does not exist")
		}
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete deletes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
