package model

import "time"

// CommonArea represents a bookable shared space within a condominium, such as
// a pool or party hall. Names are unique within a condominium.
type CommonArea struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:128;not null;uniqueIndex:idx_area_condo_name" json:"name"`
	Available     bool      `gorm:"not null" json:"available"`
	CondominiumID int64     `gorm:"not null;uniqueIndex:idx_area_condo_name" json:"condominiumId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Associations
	Condominium Condominium `json:"-"`
}
