package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"parking-backend/internal/config"
	"parking-backend/internal/domains/visitor/model"
	"parking-backend/internal/domains/visitor/repository"
)

// visitorService implements ServiceInterface.
// No locks are taken here: concurrent registrations race to the unique
// indexes and the loser gets a duplicate error, never a retry.
type visitorService struct {
	repo    repository.RepositoryInterface
	parking config.ParkingConfig
}

func NewVisitorService(repo repository.RepositoryInterface, parking config.ParkingConfig) ServiceInterface {
	return &visitorService{
		repo:    repo,
		parking: parking,
	}
}

// normalize trims and upper-cases the uniqueness-constrained fields so
// "abc1234" and "ABC1234" are the same plate everywhere.
func normalize(req *model.RegisterVisitorRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.ICNumber = strings.ToUpper(strings.TrimSpace(req.ICNumber))
	req.LicensePlate = strings.ToUpper(strings.TrimSpace(req.LicensePlate))
	req.UnitNumber = strings.TrimSpace(req.UnitNumber)
}

func validateFields(name, ic, plate, unit string) error {
	if name == "" {
		return model.ErrNameRequired
	}
	if ic == "" {
		return model.ErrICRequired
	}
	if plate == "" {
		return model.ErrPlateRequired
	}
	if unit == "" {
		return model.ErrUnitRequired
	}
	return nil
}

// duplicateErrorFor picks the reported collision field. IC number takes
// precedence when the existing record collides on both.
func duplicateErrorFor(existing *model.Visitor, ic string) error {
	if existing.ICNumber == ic {
		return model.ErrDuplicateIC
	}
	return model.ErrDuplicatePlate
}

func (s *visitorService) Register(ctx context.Context, req *model.RegisterVisitorRequest) (*model.Visitor, error) {
	normalize(req)

	if err := validateFields(req.Name, req.ICNumber, req.LicensePlate, req.UnitNumber); err != nil {
		return nil, err
	}

	// Pre-check for a friendly duplicate message. The unique indexes remain
	// the authority; a concurrent insert can still win between here and
	// Create below.
	existing, err := s.repo.FindByICOrPlate(ctx, req.ICNumber, req.LicensePlate)
	if err == nil {
		return nil, duplicateErrorFor(existing, req.ICNumber)
	}
	if !errors.Is(err, model.ErrVisitorNotFound) {
		return nil, fmt.Errorf("failed to check existing visitor: %w", err)
	}

	created, err := s.repo.Create(ctx, &model.Visitor{
		Name:         req.Name,
		ICNumber:     req.ICNumber,
		LicensePlate: req.LicensePlate,
		UnitNumber:   req.UnitNumber,
		Status:       model.StatusActive,
	})
	if err != nil {
		// A lost race surfaces as the same duplicate error the pre-check
		// would have produced.
		if model.IsDuplicate(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register visitor: %w", err)
	}

	log.Info().
		Str("visitor_id", created.ID.String()).
		Str("plate", created.LicensePlate).
		Str("unit", created.UnitNumber).
		Msg("Visitor registered")

	return created, nil
}

func (s *visitorService) List(ctx context.Context, filter model.VisitorFilter) ([]model.Visitor, int64, error) {
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Status != "" {
		status, err := model.ParseStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = string(status)
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *visitorService) Get(ctx context.Context, id string) (*model.Visitor, error) {
	visitorID, err := parseVisitorID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, visitorID)
}

func (s *visitorService) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	visitorID, err := parseVisitorID(id)
	if err != nil {
		return false, err
	}

	newStatus, err := model.ParseStatus(status)
	if err != nil {
		return false, err
	}

	changed, err := s.repo.UpdateStatus(ctx, visitorID, newStatus)
	if err != nil {
		return false, err
	}

	log.Info().
		Str("visitor_id", visitorID.String()).
		Str("status", string(newStatus)).
		Bool("changed", changed).
		Msg("Visitor status updated")

	return changed, nil
}

func (s *visitorService) Edit(ctx context.Context, id string, req *model.UpdateVisitorRequest) (*model.Visitor, error) {
	visitorID, err := parseVisitorID(id)
	if err != nil {
		return nil, err
	}

	reg := model.RegisterVisitorRequest(*req)
	normalize(&reg)

	if err := validateFields(reg.Name, reg.ICNumber, reg.LicensePlate, reg.UnitNumber); err != nil {
		return nil, err
	}

	// The record being edited may keep its own IC/plate, so the pre-check
	// excludes it.
	existing, err := s.repo.FindByICOrPlateExcluding(ctx, reg.ICNumber, reg.LicensePlate, visitorID)
	if err == nil {
		return nil, duplicateErrorFor(existing, reg.ICNumber)
	}
	if !errors.Is(err, model.ErrVisitorNotFound) {
		return nil, fmt.Errorf("failed to check existing visitor: %w", err)
	}

	updated, err := s.repo.Update(ctx, &model.Visitor{
		ID:           visitorID,
		Name:         reg.Name,
		ICNumber:     reg.ICNumber,
		LicensePlate: reg.LicensePlate,
		UnitNumber:   reg.UnitNumber,
	})
	if err != nil {
		if model.IsDuplicate(err) {
			return nil, err
		}
		if errors.Is(err, model.ErrVisitorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update visitor: %w", err)
	}

	return updated, nil
}

func (s *visitorService) Delete(ctx context.Context, id string) error {
	visitorID, err := parseVisitorID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, visitorID); err != nil {
		return err
	}

	log.Info().Str("visitor_id", visitorID.String()).Msg("Visitor deleted")
	return nil
}

func (s *visitorService) SearchByName(ctx context.Context, name string) (*model.Visitor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrVisitorNotFound
	}
	return s.repo.SearchByName(ctx, name)
}

func (s *visitorService) VisitorsByUnit(ctx context.Context, unitNumber string) ([]model.Visitor, error) {
	return s.repo.GetByUnit(ctx, strings.TrimSpace(unitNumber))
}

func (s *visitorService) Stats(ctx context.Context) (*model.ParkingStats, error) {
	active, left, total, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	capacity := s.parking.Capacity
	available := int64(capacity) - active
	if available < 0 {
		available = 0
	}

	rate := 0.0
	if capacity > 0 {
		rate = float64(active) / float64(capacity) * 100
	}

	return &model.ParkingStats{
		Active:        active,
		Left:          left,
		Total:         total,
		Capacity:      capacity,
		Available:     available,
		OccupancyRate: rate,
	}, nil
}

// parseVisitorID folds malformed identifiers into the not-found error:
// a garbage id can never resolve to a record.
func parseVisitorID(id string) (uuid.UUID, error) {
	visitorID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, model.ErrVisitorNotFound
	}
	return visitorID, nil
}
