package model

import "time"

// Reservation books a common area for one calendar day. The composite unique
// index is the authoritative enforcement of the one-reservation-per-slot
// rule; a duplicate insert fails at the database regardless of interleaving.
// Reservations are never updated in place: a changed date is a cancel plus a
// new reservation.
type Reservation struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	CommonAreaID int64     `gorm:"not null;uniqueIndex:idx_reservation_slot" json:"-"`
	ReserveDate  Date      `gorm:"not null;uniqueIndex:idx_reservation_slot" json:"reserveDate"`
	CreatedAt    time.Time `json:"createdAt"`

	// Associations
	CommonArea CommonArea `json:"-"`
}
