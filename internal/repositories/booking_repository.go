package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"tripy/internal/models/db_models"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *db_models.Booking) error
	GetBookingByID(ctx context.Context, bookingID string) (*db_models.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status string) error
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

type bookingRepository struct {
	db *gorm.DB
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *db_models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(booking).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, bookingID string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Legs").
		Where("id = ?", bookingID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListBookingsByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Legs").
		Where("user_id = ?", userID).
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}
