package repository

import (
	"context"
	"time"

	"github.com/costeratours/experience-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindAll(ctx context.Context, experienceID string, status *models.BookingStatus) ([]models.Booking, error)
	// ListNonCancelledFuture returns the capacity ledger for one experience:
	// (travel_date, guests_count) for every booking whose status is not
	// cancelled and whose travel date is on or after from.
	ListNonCancelledFuture(ctx context.Context, experienceID string, from time.Time) ([]models.LedgerEntry, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, experienceID string, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if experienceID != "" {
		q = q.Where("experience_id = ?", experienceID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListNonCancelledFuture(ctx context.Context, experienceID string, from time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("travel_date", "guests_count").
		Where("experience_id = ? AND status <> ? AND travel_date >= ?",
			experienceID, models.StatusCancelled, from).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}
