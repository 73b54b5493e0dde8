package repository

import (
	"context"

	"github.com/google/uuid"

	"parking-backend/internal/domains/visitor/model"
)

// RepositoryInterface defines data access for visitor records.
// The Postgres unique indexes on ic_number and license_plate are the real
// uniqueness authority; Create and Update surface their violations as the
// domain duplicate errors so callers never see raw storage failures.
type RepositoryInterface interface {
	// Create inserts a new visitor and returns it with the generated ID
	// and timestamps. Errors: ErrDuplicateIC, ErrDuplicatePlate.
	Create(ctx context.Context, v *model.Visitor) (*model.Visitor, error)

	// GetByID returns ErrVisitorNotFound if no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Visitor, error)

	// FindByICOrPlate returns the first record holding either normalized
	// field, or ErrVisitorNotFound. Used as the registration pre-check.
	FindByICOrPlate(ctx context.Context, icNumber, licensePlate string) (*model.Visitor, error)

	// FindByICOrPlateExcluding is the edit pre-check: same as
	// FindByICOrPlate but ignores the record being edited.
	FindByICOrPlateExcluding(ctx context.Context, icNumber, licensePlate string, exclude uuid.UUID) (*model.Visitor, error)

	// GetAll returns records newest-first with optional search/status/unit
	// filters, plus the unpaginated total. Empty result is not an error.
	GetAll(ctx context.Context, filter model.VisitorFilter) ([]model.Visitor, int64, error)

	// SearchByName returns the first visitor whose name contains the query
	// case-insensitively, or ErrVisitorNotFound.
	SearchByName(ctx context.Context, name string) (*model.Visitor, error)

	// GetByUnit returns all visitors registered for an exact unit number.
	GetByUnit(ctx context.Context, unitNumber string) ([]model.Visitor, error)

	// UpdateStatus sets status and last_updated. changed=false with a nil
	// error means the record exists but already held the requested status;
	// ErrVisitorNotFound means it does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (changed bool, err error)

	// Update rewrites the mutable details of an existing record.
	// Errors: ErrVisitorNotFound, ErrDuplicateIC, ErrDuplicatePlate.
	Update(ctx context.Context, v *model.Visitor) (*model.Visitor, error)

	// Delete removes the record permanently. Errors: ErrVisitorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByStatus returns active, left and total counts for the stats view.
	CountByStatus(ctx context.Context) (active, left, total int64, err error)
}
