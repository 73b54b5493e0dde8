package model

import "errors"

var (
	// Validation errors
	ErrNameRequired  = errors.New("visitor name is required")
	ErrICRequired    = errors.New("IC number is required")
	ErrPlateRequired = errors.New("license plate is required")
	ErrUnitRequired  = errors.New("unit number is required")
	ErrInvalidStatus = errors.New("status must be 'active' or 'left'")

	// Uniqueness errors - carry which field collided
	ErrDuplicateIC    = errors.New("visitor with this IC number already exists")
	ErrDuplicatePlate = errors.New("visitor with this license plate already exists")

	// Business rule errors
	ErrVisitorNotFound = errors.New("visitor not found")

	// Database errors
	ErrDatabaseQuery = errors.New("database query error")
)

// IsDuplicate reports whether err is one of the uniqueness violations.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateIC) || errors.Is(err, ErrDuplicatePlate)
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrVisitorNotFound):
		return "VISITOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateIC):
		return "DUPLICATE_IC_NUMBER"
	case errors.Is(err, ErrDuplicatePlate):
		return "DUPLICATE_LICENSE_PLATE"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrICRequired),
		errors.Is(err, ErrPlateRequired),
		errors.Is(err, ErrUnitRequired):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrVisitorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateIC), errors.Is(err, ErrDuplicatePlate):
		return 409
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrICRequired),
		errors.Is(err, ErrPlateRequired),
		errors.Is(err, ErrUnitRequired),
		errors.Is(err, ErrInvalidStatus):
		return 400
	default:
		return 500
	}
}
