// Package booking enforces the one-reservation-per-(area, date) rule for
// common areas.
package booking

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
	"argus-backend/internal/store"
)

// Reservation is the caller-facing projection of a reservation record.
type Reservation struct {
	ID       int64      `json:"id"`
	AreaName string     `json:"areaName"`
	Date     model.Date `json:"reserveDate"`
}

// Guard decides whether a requested (area, date) reservation may be created.
type Guard struct {
	store store.Store
}

// NewGuard creates a reservation guard backed by the given store.
func NewGuard(s store.Store) *Guard {
	return &Guard{store: s}
}

// Reserve books the named area for the given date. It fails with NotFound if
// the area does not exist, Unavailable if the area is not bookable, and
// Conflict if the slot is taken.
//
// The existence probe and the insert run in one transaction, and the (area,
// date) unique index is the authoritative check: when two callers race for
// the same slot, the loser's insert fails with a duplicate-key error and is
// reported as Conflict. The probe ahead of the insert only produces the
// friendlier message on the common sequential path.
func (g *Guard) Reserve(ctx context.Context, areaName string, date model.Date) (*Reservation, error) {
	if areaName == "" {
		return nil, fault.Validation("area name is required")
	}
	if date.IsZero() {
		return nil, fault.Validation("reservation date is required")
	}

	var out *Reservation
	err := g.store.Transaction(ctx, func(tx store.Store) error {
		area, err := tx.FindCommonAreaByName(ctx, areaName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("common area %q not found", areaName)
		}
		if err != nil {
			return fault.StoreUnavailable(err)
		}

		if !area.Available {
			return fault.Unavailable("area %q is currently not available for booking", area.Name)
		}

		if _, err := tx.FindReservationBySlot(ctx, area.ID, date); err == nil {
			return fault.Conflict("area %q is already reserved for %s", area.Name, date)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.StoreUnavailable(err)
		}

		r := &model.Reservation{CommonAreaID: area.ID, ReserveDate: date}
		if err := tx.CreateReservation(ctx, r); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fault.Conflict("area %q is already reserved for %s", area.Name, date)
			}
			return fault.StoreUnavailable(err)
		}

		out = &Reservation{ID: r.ID, AreaName: area.Name, Date: date}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel deletes the reservation and returns a confirmation naming the area
// and the reserved date.
func (g *Guard) Cancel(ctx context.Context, reservationID int64) (string, error) {
	r, err := g.store.GetReservation(ctx, reservationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fault.NotFound("reservation %d not found", reservationID)
	}
	if err != nil {
		return "", fault.StoreUnavailable(err)
	}

	if err := g.store.DeleteReservation(ctx, reservationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fault.NotFound("reservation %d not found", reservationID)
		}
		return "", fault.StoreUnavailable(err)
	}

	return fmt.Sprintf("The reservation of area %s for %s was successfully cancelled.",
		r.CommonArea.Name, r.ReserveDate), nil
}

// ListAll returns every reservation projected to (id, area name, date).
func (g *Guard) ListAll(ctx context.Context) ([]Reservation, error) {
	records, err := g.store.ListReservations(ctx)
	if err != nil {
		return nil, fault.StoreUnavailable(err)
	}

	out := make([]Reservation, 0, len(records))
	for _, r := range records {
		out = append(out, Reservation{
			ID:       r.ID,
			AreaName: r.CommonArea.Name,
			Date:     r.ReserveDate,
		})
	}
	return out, nil
}
