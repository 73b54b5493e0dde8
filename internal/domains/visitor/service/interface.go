package service

import (
	"context"

	"parking-backend/internal/domains/visitor/model"
)

// ServiceInterface owns the visitor record lifecycle: uniqueness of IC number
// and license plate, status transitions, and timestamps.
//
// Record identifiers are accepted as strings; a malformed id is reported as
// ErrVisitorNotFound, matching how the original system folded invalid-id
// checks into its lookup failures.
type ServiceInterface interface {
	// Register creates a visitor with status=active.
	// IC number and license plate are trimmed and upper-cased before the
	// uniqueness pre-check; a duplicate that slips past the pre-check and
	// hits the unique index is reported with the same duplicate errors.
	// Errors: ErrNameRequired, ErrICRequired, ErrPlateRequired,
	// ErrUnitRequired, ErrDuplicateIC, ErrDuplicatePlate.
	Register(ctx context.Context, req *model.RegisterVisitorRequest) (*model.Visitor, error)

	// List returns the register newest-first with optional filters.
	// Never fails on empty.
	List(ctx context.Context, filter model.VisitorFilter) ([]model.Visitor, int64, error)

	// Get returns one record. Errors: ErrVisitorNotFound.
	Get(ctx context.Context, id string) (*model.Visitor, error)

	// UpdateStatus accepts "active"/"left" case-insensitively.
	// changed=false with a nil error means the record already held the
	// requested status (last_updated is still bumped).
	// Errors: ErrVisitorNotFound, ErrInvalidStatus.
	UpdateStatus(ctx context.Context, id, status string) (changed bool, err error)

	// Edit rewrites all visitor details; the uniqueness re-check excludes
	// the record itself. Errors as Register plus ErrVisitorNotFound.
	Edit(ctx context.Context, id string, req *model.UpdateVisitorRequest) (*model.Visitor, error)

	// Delete removes the record permanently. Errors: ErrVisitorNotFound.
	Delete(ctx context.Context, id string) error

	// SearchByName returns the first case-insensitive substring match.
	// Errors: ErrVisitorNotFound.
	SearchByName(ctx context.Context, name string) (*model.Visitor, error)

	// VisitorsByUnit returns all visitors for an exact unit number.
	VisitorsByUnit(ctx context.Context, unitNumber string) ([]model.Visitor, error)

	// Stats computes the occupancy view against the configured capacity.
	Stats(ctx context.Context) (*model.ParkingStats, error)

	// ExportXLSX renders the whole register as a spreadsheet for download.
	ExportXLSX(ctx context.Context) ([]byte, error)
}
