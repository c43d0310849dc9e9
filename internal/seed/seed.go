// Package seed installs the fixed reference vocabulary and the initial
// superuser account. Every seeder is idempotent: rows are matched by
// exact label or email and existing rows are never modified, so locally
// edited descriptions survive re-seeding.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
)

func strPtr(s string) *string { return &s }

// canonical reference rows per lookup kind
var canonical = map[models.LookupKind][]models.Lookup{
	models.LookupDeliveryModes: {
		{Label: "In-Person"},
		{Label: "Online"},
		{Label: "Hybrid"},
	},
	models.LookupEventTypes: {
		{Label: "Book Club"},
		{Label: "Talk"},
		{Label: "Webinar"},
		{Label: "Workshop"},
	},
	models.LookupRegistrationStatuses: {
		{
			Label:       "Registered",
			Description: strPtr("Enrollment is confirmed and a seat is reserved for the participant. All required steps (e.g., approval/payment) have been completed."),
		},
		{
			Label:       "Submitted",
			Description: strPtr("Registration request has been received but is not yet confirmed. Pending review, approval, or payment."),
		},
		{
			Label:       "Waitlisted",
			Description: strPtr("The class is currently full; the participant is queued for a seat. No guarantee of placement; will be notified if a spot opens."),
		},
		{
			Label:       "Cancelled",
			Description: strPtr("The registration was withdrawn by the participant or an admin. The seat (if any) is released; refund policies may apply."),
		},
	},
}

// LookupSeedStore is the repository surface the lookup seeders depend on
type LookupSeedStore interface {
	Kind() models.LookupKind
	GetByLabel(ctx context.Context, label string) (*models.Lookup, error)
	Create(ctx context.Context, lookup *models.Lookup) (int64, error)
}

// ApplyLookup seeds the canonical rows for the store's kind. It returns
// the number of rows created; rows whose label already exists are left
// untouched.
func ApplyLookup(ctx context.Context, store LookupSeedStore) (int, error) {
	rows, ok := canonical[store.Kind()]
	if !ok {
		return 0, fmt.Errorf("no canonical rows for kind %q", store.Kind())
	}

	created := 0
	for _, row := range rows {
		_, err := store.GetByLabel(ctx, row.Label)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return created, fmt.Errorf("error checking %s %q: %w", store.Kind(), row.Label, err)
		}

		row := row
		if _, err := store.Create(ctx, &row); err != nil {
			// A concurrent seeder may have inserted the row between the
			// lookup and the insert.
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return created, fmt.Errorf("error seeding %s %q: %w", store.Kind(), row.Label, err)
		}
		created++
	}

	logger.Info().
		Str("kind", string(store.Kind())).
		Int("created", created).
		Msg("Reference data seeded")

	return created, nil
}

// SuperuserStore is the repository surface the superuser seeder depends on
type SuperuserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) (int64, error)
}

// EnsureSuperuser creates the initial admin account when no admin with
// the configured email exists. An existing account is never modified,
// so password rotation via config does not clobber a live credential.
func EnsureSuperuser(ctx context.Context, store SuperuserStore, email, fullName, password string) (bool, error) {
	_, err := store.GetByEmail(ctx, email)
	if err == nil {
		logger.Debug().Str("email", email).Msg("Superuser already present")
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, fmt.Errorf("error checking superuser: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("error hashing superuser password: %w", err)
	}

	admin := &models.Admin{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
	}

	if _, err := store.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("error creating superuser: %w", err)
	}

	logger.Info().Str("email", email).Msg("Superuser created")
	return true, nil
}
