package model

import "time"

// Announcement is a notice published to the residents of a condominium.
type Announcement struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:128;not null" json:"title"`
	Body          string    `gorm:"size:2048;not null" json:"body"`
	AuthorID      int64     `gorm:"not null;index" json:"authorId"`
	CondominiumID int64     `gorm:"not null;index" json:"condominiumId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Associations
	Author      User        `gorm:"foreignKey:AuthorID" json:"-"`
	Condominium Condominium `json:"-"`
}
