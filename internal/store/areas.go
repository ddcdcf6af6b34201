package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/model"
)

// CommonAreaStore covers bookable common areas.
type CommonAreaStore interface {
	CreateCommonArea(ctx context.Context, a *model.CommonArea) error
	GetCommonArea(ctx context.Context, id int64) (*model.CommonArea, error)
	FindCommonAreaByName(ctx context.Context, name string) (*model.CommonArea, error)
	ListCommonAreas(ctx context.Context) ([]model.CommonArea, error)
	UpdateCommonArea(ctx context.Context, a *model.CommonArea) error
	DeleteCommonArea(ctx context.Context, id int64) error
	CountReservationsByArea(ctx context.Context, areaID int64) (int64, error)
}

func (s *gormStore) CreateCommonArea(ctx context.Context, a *model.CommonArea) error {
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *gormStore) GetCommonArea(ctx context.Context, id int64) (*model.CommonArea, error) {
	var a model.CommonArea
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *gormStore) FindCommonAreaByName(ctx context.Context, name string) (*model.CommonArea, error) {
	var a model.CommonArea
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *gormStore) ListCommonAreas(ctx context.Context) ([]model.CommonArea, error) {
	var areas []model.CommonArea
	if err := s.db.WithContext(ctx).Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("failed to list common areas: %w", err)
	}
	return areas, nil
}

func (s *gormStore) UpdateCommonArea(ctx context.Context, a *model.CommonArea) error {
	return s.db.WithContext(ctx).Save(a).Error
}

func (s *gormStore) DeleteCommonArea(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.CommonArea{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) CountReservationsByArea(ctx context.Context, areaID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Reservation{}).Where("common_area_id = ?", areaID).Count(&n).Error
	return n, err
}
