package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"parking-backend/internal/config"
	"parking-backend/internal/domains/visitor/model"
	"parking-backend/internal/domains/visitor/service"
)

// Dispatcher executes the read-only query behind a classified intent and
// renders a deterministic plain-text summary. The text is either returned
// to the user as-is (when no model is configured) or fed to the composer
// as context, so it must already be complete and self-contained.
type Dispatcher struct {
	visitors service.ServiceInterface
	parking  config.ParkingConfig
}

func NewDispatcher(visitors service.ServiceInterface, parking config.ParkingConfig) *Dispatcher {
	return &Dispatcher{
		visitors: visitors,
		parking:  parking,
	}
}

// StatsContext renders active/left/total counts and the computed
// available spots.
func (d *Dispatcher) StatsContext(ctx context.Context) (string, error) {
	stats, err := d.visitors.Stats(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Active visitors: %d\nLeft: %d\nTotal registered: %d\nAvailable spots: %d/%d",
		stats.Active, stats.Left, stats.Total, stats.Available, stats.Capacity,
	), nil
}

// SummaryContext renders the one-line occupancy verdict plus counts.
func (d *Dispatcher) SummaryContext(ctx context.Context) (string, error) {
	stats, err := d.visitors.Stats(ctx)
	if err != nil {
		return "", err
	}

	var verdict string
	switch {
	case stats.Available == 0:
		verdict = "🔴 PARKING FULL"
	case stats.Available < int64(d.parking.LowAvailabilityBelow):
		verdict = "🟡 LOW AVAILABILITY"
	default:
		verdict = "🟢 PARKING AVAILABLE"
	}

	return fmt.Sprintf("%s\n%d cars parked, %d spots available", verdict, stats.Active, stats.Available), nil
}

// SearchContext renders the first visitor matching the name, or a plain
// not-found message. Absence is an answer, not an error.
func (d *Dispatcher) SearchContext(ctx context.Context, name string) (string, error) {
	visitor, err := d.visitors.SearchByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrVisitorNotFound) {
			return fmt.Sprintf("No visitor found with name '%s'.", name), nil
		}
		return "", err
	}

	return fmt.Sprintf(
		"✅ Found visitor:\n👤 Name: %s\n🪪 IC: %s\n🚗 Plate: %s\n🏢 Unit: %s\n📍 Status: %s\n🕐 Registered: %s",
		visitor.Name,
		visitor.ICNumber,
		visitor.LicensePlate,
		visitor.UnitNumber,
		visitor.Status,
		visitor.CreatedAt.Format("2006-01-02 15:04"),
	), nil
}

// UnitContext renders every visitor registered for an exact unit number.
func (d *Dispatcher) UnitContext(ctx context.Context, unitNumber string) (string, error) {
	visitors, err := d.visitors.VisitorsByUnit(ctx, unitNumber)
	if err != nil {
		return "", err
	}

	if len(visitors) == 0 {
		return fmt.Sprintf("No visitors found for unit %s.", unitNumber), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d visitors for unit %s:\n", len(visitors), unitNumber)
	for i, v := range visitors {
		fmt.Fprintf(&b, "%d. %s - %s (%s)\n", i+1, v.Name, v.LicensePlate, v.Status)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// ListContext renders the register capped at the configured maximum so a
// single answer stays bounded.
func (d *Dispatcher) ListContext(ctx context.Context) (string, error) {
	visitors, total, err := d.visitors.List(ctx, model.VisitorFilter{Limit: d.parking.ListCap})
	if err != nil {
		return "", err
	}

	if len(visitors) == 0 {
		return "No visitors found in the database.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Total Visitors Found: %d\n", total)
	for i, v := range visitors {
		fmt.Fprintf(&b,
			"\n%d. %s\n   🪪 IC: %s\n   🚗 Plate: %s\n   🏢 Unit: %s\n   📍 Status: %s\n   🕐 Registered: %s\n",
			i+1,
			v.Name,
			v.ICNumber,
			v.LicensePlate,
			v.UnitNumber,
			capitalize(string(v.Status)),
			v.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
