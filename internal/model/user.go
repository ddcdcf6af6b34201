package model

import "time"

// UserRole distinguishes condominium administrators from residents.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleResident UserRole = "RESIDENT"
)

// User represents a resident or administrator of a condominium.
type User struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:50;not null;index" json:"name"`
	CPF           string    `gorm:"size:50;not null;uniqueIndex" json:"cpf"`
	PasswordHash  string    `gorm:"size:100;not null" json:"-"`
	Phone         string    `gorm:"size:32;not null" json:"phone"`
	Role          UserRole  `gorm:"size:16;not null" json:"role"`
	Block         *string   `gorm:"size:1" json:"block,omitempty"`
	Apartment     *int      `json:"apartment,omitempty"`
	CondominiumID *int64    `gorm:"index" json:"condominiumId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Associations
	Condominium *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`
}
