package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/model"
)

// CondominiumStore covers condominium records.
type CondominiumStore interface {
	CreateCondominium(ctx context.Context, c *model.Condominium) error
	GetCondominium(ctx context.Context, id int64) (*model.Condominium, error)
	FindCondominiumByName(ctx context.Context, name string) (*model.Condominium, error)
	ListCondominiums(ctx context.Context) ([]model.Condominium, error)
	UpdateCondominium(ctx context.Context, c *model.Condominium) error
	DeleteCondominium(ctx context.Context, id int64) error
	CountCondominiumReferences(ctx context.Context, id int64) (int64, error)
}

func (s *gormStore) CreateCondominium(ctx context.Context, c *model.Condominium) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *gormStore) GetCondominium(ctx context.Context, id int64) (*model.Condominium, error) {
	var c model.Condominium
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *gormStore) FindCondominiumByName(ctx context.Context, name string) (*model.Condominium, error) {
	var c model.Condominium
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *gormStore) ListCondominiums(ctx context.Context) ([]model.Condominium, error) {
	var condos []model.Condominium
	if err := s.db.WithContext(ctx).Find(&condos).Error; err != nil {
		return nil, fmt.Errorf("failed to list condominiums: %w", err)
	}
	return condos, nil
}

func (s *gormStore) UpdateCondominium(ctx context.Context, c *model.Condominium) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *gormStore) DeleteCondominium(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Condominium{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountCondominiumReferences counts rows in other tables that point at the
// condominium. Deletion is rejected while any exist.
func (s *gormStore) CountCondominiumReferences(ctx context.Context, id int64) (int64, error) {
	var total, n int64
	db := s.db.WithContext(ctx)
	if err := db.Model(&model.CommonArea{}).Where("condominium_id = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	total += n
	if err := db.Model(&model.User{}).Where("condominium_id = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	total += n
	if err := db.Model(&model.VotingSession{}).Where("condominium_id = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	total += n
	if err := db.Model(&model.Announcement{}).Where("condominium_id = ?", id).Count(&n).Error; err != nil {
		return 0, err
	}
	return total + n, nil
}
