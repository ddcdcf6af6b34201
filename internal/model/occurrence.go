package model

import "time"

// OccurrenceStatus tracks the handling state of a reported occurrence.
type OccurrenceStatus string

const (
	OccurrenceOpen       OccurrenceStatus = "OPEN"
	OccurrenceInProgress OccurrenceStatus = "IN_PROGRESS"
	OccurrenceResolved   OccurrenceStatus = "RESOLVED"
)

// Occurrence represents a complaint or incident reported by a resident. The
// protocol code is handed to the reporter for external reference.
type Occurrence struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	Protocol    string           `gorm:"size:36;not null;uniqueIndex" json:"protocol"`
	Title       string           `gorm:"size:128;not null" json:"title"`
	Description string           `gorm:"size:1024" json:"description"`
	Status      OccurrenceStatus `gorm:"size:16;not null" json:"status"`
	ReporterID  int64            `gorm:"not null;index" json:"reporterId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	// Associations
	Reporter User `gorm:"foreignKey:ReporterID" json:"-"`
}
