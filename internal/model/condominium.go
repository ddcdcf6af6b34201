package model

import "time"

// Condominium represents a managed building or complex.
type Condominium struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Address   string    `gorm:"size:256" json:"address"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// Associations
	CommonAreas []CommonArea `gorm:"foreignKey:CondominiumID" json:"-"`
}
