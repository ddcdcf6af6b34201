package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/model"
)

// OccurrenceStore covers resident-reported occurrences.
type OccurrenceStore interface {
	CreateOccurrence(ctx context.Context, o *model.Occurrence) error
	GetOccurrence(ctx context.Context, id int64) (*model.Occurrence, error)
	ListOccurrences(ctx context.Context) ([]model.Occurrence, error)
	UpdateOccurrence(ctx context.Context, o *model.Occurrence) error
	DeleteOccurrence(ctx context.Context, id int64) error
}

func (s *gormStore) CreateOccurrence(ctx context.Context, o *model.Occurrence) error {
	return s.db.WithContext(ctx).Create(o).Error
}

func (s *gormStore) GetOccurrence(ctx context.Context, id int64) (*model.Occurrence, error) {
	var o model.Occurrence
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *gormStore) ListOccurrences(ctx context.Context) ([]model.Occurrence, error) {
	var occs []model.Occurrence
	if err := s.db.WithContext(ctx).Find(&occs).Error; err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	return occs, nil
}

func (s *gormStore) UpdateOccurrence(ctx context.Context, o *model.Occurrence) error {
	return s.db.WithContext(ctx).Save(o).Error
}

func (s *gormStore) DeleteOccurrence(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Occurrence{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
