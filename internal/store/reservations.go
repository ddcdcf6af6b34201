package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/model"
)

// ReservationStore covers common-area reservations. FindReservationBySlot is
// the uniqueness probe of the reservation guard; the (area, date) unique
// index backs it and makes a racing duplicate insert fail at the database.
type ReservationStore interface {
	CreateReservation(ctx context.Context, r *model.Reservation) error
	GetReservation(ctx context.Context, id int64) (*model.Reservation, error)
	FindReservationBySlot(ctx context.Context, areaID int64, date model.Date) (*model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

func (s *gormStore) CreateReservation(ctx context.Context, r *model.Reservation) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormStore) GetReservation(ctx context.Context, id int64) (*model.Reservation, error) {
	var r model.Reservation
	if err := s.db.WithContext(ctx).Preload("CommonArea").First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) FindReservationBySlot(ctx context.Context, areaID int64, date model.Date) (*model.Reservation, error) {
	var r model.Reservation
	err := s.db.WithContext(ctx).
		Where("common_area_id = ? AND reserve_date = ?", areaID, date).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).Preload("CommonArea").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *gormStore) DeleteReservation(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
