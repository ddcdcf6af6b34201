package model

import "time"

// VotingSession represents a proposal put to the residents of a condominium
// for a bounded time window. Votes are only accepted between OpensAt and
// ClosesAt, inclusive.
type VotingSession struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Proposal      string    `gorm:"size:256;not null" json:"proposal"`
	Description   string    `gorm:"size:1024" json:"description"`
	OpensAt       Date      `gorm:"not null" json:"opensAt"`
	ClosesAt      Date      `gorm:"not null" json:"closesAt"`
	CondominiumID int64     `gorm:"not null;index" json:"condominiumId"`
	CreatedAt     time.Time `json:"createdAt"`

	// Associations
	Condominium Condominium `json:"-"`
}

// Vote records one user's choice in a voting session. The composite unique
// index enforces one vote per (session, user) at the database, closing the
// race between concurrent duplicate attempts. Votes are immutable once cast.
type Vote struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Choice          bool      `gorm:"not null" json:"choice"`
	CastAt          time.Time `gorm:"not null" json:"castAt"`
	VotingSessionID int64     `gorm:"not null;uniqueIndex:idx_vote_session_user" json:"sessionId"`
	UserID          int64     `gorm:"not null;uniqueIndex:idx_vote_session_user" json:"userId"`

	// Associations
	VotingSession VotingSession `json:"-"`
	User          User          `json:"-"`
}
