// Package store is the persistence layer: typed create/fetch/delete
// operations per entity plus the indexed lookups the conflict guards probe
// with. All methods run against the database handle the store was built
// with, so a store bound to a transaction scopes every call to it.
package store

import (
	"context"

	"gorm.io/gorm"
)

// Store defines the interface for all database operations.
type Store interface {
	UserStore
	CondominiumStore
	CommonAreaStore
	ReservationStore
	OccurrenceStore
	AnnouncementStore
	VotingStore

	// DB exposes the underlying handle for migrations and tests.
	DB() *gorm.DB
	// Transaction runs fn against a store bound to a single database
	// transaction, committing on nil and rolling back on error.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB { return s.db }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
