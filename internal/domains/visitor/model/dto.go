package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// RegisterVisitorRequest - POST /v1/visitors
type RegisterVisitorRequest struct {
	Name         string `json:"name"`
	ICNumber     string `json:"ic_number"`
	LicensePlate string `json:"license_plate"`
	UnitNumber   string `json:"unit_number"`
}

func (r RegisterVisitorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ICNumber,
			validation.Required.Error("ic_number is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.LicensePlate,
			validation.Required.Error("license_plate is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.UnitNumber,
			validation.Required.Error("unit_number is required"),
			validation.Length(1, 20),
		),
	)
}

// UpdateVisitorRequest - PUT /v1/visitors/:id
// Full-detail edit; every field is re-validated like a registration.
type UpdateVisitorRequest struct {
	Name         string `json:"name"`
	ICNumber     string `json:"ic_number"`
	LicensePlate string `json:"license_plate"`
	UnitNumber   string `json:"unit_number"`
}

func (r UpdateVisitorRequest) Validate() error {
	return RegisterVisitorRequest(r).Validate()
}

// UpdateStatusRequest - PATCH /v1/visitors/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required.Error("status is required")),
	)
}

// ChatRequest - POST /v1/chat
type ChatRequest struct {
	Message string `json:"message"`
}

func (r ChatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required.Error("message is required"), validation.Length(1, 2000)),
	)
}

// VisitorResponse is the full visitor record returned by the API.
type VisitorResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ICNumber     string    `json:"ic_number"`
	LicensePlate string    `json:"license_plate"`
	UnitNumber   string    `json:"unit_number"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdated  time.Time `json:"last_updated"`
}

// RegisterVisitorResponse mirrors the original API's creation reply.
type RegisterVisitorResponse struct {
	VisitorID uuid.UUID `json:"visitor_id"`
	Detail    string    `json:"detail"`
}

// UpdateStatusResponse reports whether the update actually changed anything.
// Changed=false with HTTP 200 means the record was found but already held
// the requested status.
type UpdateStatusResponse struct {
	Changed bool   `json:"changed"`
	Status  Status `json:"status"`
}

// VisitorFilter - query parameters for GET /v1/visitors
type VisitorFilter struct {
	Search string `form:"search"` // substring over name, IC, plate
	Status string `form:"status"` // active | left | "" (all)
	Unit   string `form:"unit"`   // exact unit number
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// ToResponse converts a Visitor entity to its API shape.
func (v Visitor) ToResponse() *VisitorResponse {
	return &VisitorResponse{
		ID:           v.ID,
		Name:         v.Name,
		ICNumber:     v.ICNumber,
		LicensePlate: v.LicensePlate,
		UnitNumber:   v.UnitNumber,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		LastUpdated:  v.LastUpdated,
	}
}

// ToResponseList converts a slice of entities.
func ToResponseList(visitors []Visitor) []VisitorResponse {
	out := make([]VisitorResponse, 0, len(visitors))
	for _, v := range visitors {
		out = append(out, *v.ToResponse())
	}
	return out
}
