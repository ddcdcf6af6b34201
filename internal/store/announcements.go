package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/model"
)

// AnnouncementStore covers condominium notices.
type AnnouncementStore interface {
	CreateAnnouncement(ctx context.Context, a *model.Announcement) error
	GetAnnouncement(ctx context.Context, id int64) (*model.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a *model.Announcement) error
	DeleteAnnouncement(ctx context.Context, id int64) error
}

func (s *gormStore) CreateAnnouncement(ctx context.Context, a *model.Announcement) error {
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *gormStore) GetAnnouncement(ctx context.Context, id int64) (*model.Announcement, error) {
	var a model.Announcement
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *gormStore) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var notices []model.Announcement
	if err := s.db.WithContext(ctx).Find(&notices).Error; err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return notices, nil
}

func (s *gormStore) UpdateAnnouncement(ctx context.Context, a *model.Announcement) error {
	return s.db.WithContext(ctx).Save(a).Error
}

func (s *gormStore) DeleteAnnouncement(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
