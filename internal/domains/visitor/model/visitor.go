package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the parking state of a visitor. Only two states exist;
// a record is removed entirely when the visit is over for good.
type Status string

const (
	StatusActive Status = "active"
	StatusLeft   Status = "left"
)

// ParseStatus accepts status values case-insensitively ("Active", "LEFT")
// and normalizes them to the canonical lower-case form. The original system
// mixed upper/lower handling across components; one policy applies here.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusLeft:
		return StatusLeft, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Visitor represents one visitor's parking registration.
// ICNumber and LicensePlate are stored upper-cased and are globally unique;
// the database unique indexes are the authority, the service pre-check only
// produces the friendlier error.
type Visitor struct {
	ID uuid.UUID `json:"id" db:"id"`

	Name         string `json:"name" db:"name"`
	ICNumber     string `json:"ic_number" db:"ic_number"`
	LicensePlate string `json:"license_plate" db:"license_plate"`
	UnitNumber   string `json:"unit_number" db:"unit_number"`

	Status Status `json:"status" db:"status"`

	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // immutable
	LastUpdated time.Time `json:"last_updated" db:"last_updated"` // bumped on every status change
}

// IsActive reports whether the visitor currently occupies a spot.
func (v *Visitor) IsActive() bool {
	return v.Status == StatusActive
}

// ParkingStats is the aggregated occupancy view consumed by the dashboard
// and the assistant's stats/summary tools.
type ParkingStats struct {
	Active        int64   `json:"active"`
	Left          int64   `json:"left"`
	Total         int64   `json:"total"`
	Capacity      int     `json:"capacity"`
	Available     int64   `json:"available"`
	OccupancyRate float64 `json:"occupancy_rate"` // percent of capacity in use
}
