package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/costeratours/experience-service/internal/availability"
	"github.com/costeratours/experience-service/internal/dto"
	"github.com/costeratours/experience-service/internal/models"
	"github.com/costeratours/experience-service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type BookingService interface {
	// CreateBooking validates the request, forces status to pending and
	// appends exactly one booking row. It performs no capacity check: two
	// concurrent requests on the same experience and date can both succeed
	// even when their combined guest count exceeds max capacity.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error)
	// Availability aggregates non-cancelled future bookings of one experience
	// into a travel-date -> booked-guests map. Dates without bookings are
	// absent. The result is recomputed on every call and never cached.
	Availability(ctx context.Context, experienceID string) (map[string]int, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, experienceID string, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error) {
	travelDate, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}

	currency := models.Currency(req.Currency)
	if req.Currency == "" {
		currency = models.CurrencyCOP
	}

	booking := &models.Booking{
		ID:            uuid.NewString(),
		ExperienceID:  req.ExperienceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TravelDate:    travelDate,
		GuestsCount:   req.GuestsCount,
		TotalAmount:   req.TotalAmount,
		Currency:      currency,
		Status:        models.StatusPending, // always pending at creation
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// validateCreateRequest rejects structurally invalid requests before any store
// access. The travel date may lie in the past; the ledger query filters past
// dates out of availability instead.
func validateCreateRequest(req dto.CreateBookingRequest) (time.Time, error) {
	switch {
	case req.ExperienceID == "":
		return time.Time{}, fmt.Errorf("%w: experience_id is required", ErrValidation)
	case req.CustomerName == "":
		return time.Time{}, fmt.Errorf("%w: customer_name is required", ErrValidation)
	case req.CustomerEmail == "":
		return time.Time{}, fmt.Errorf("%w: customer_email is required", ErrValidation)
	case req.TravelDate == "":
		return time.Time{}, fmt.Errorf("%w: travel_date is required", ErrValidation)
	case req.GuestsCount <= 0:
		return time.Time{}, fmt.Errorf("%w: guests_count must be greater than zero", ErrValidation)
	case req.TotalAmount <= 0:
		return time.Time{}, fmt.Errorf("%w: total_amount is required", ErrValidation)
	}
	if req.Currency != "" && !models.ValidCurrency(models.Currency(req.Currency)) {
		return time.Time{}, fmt.Errorf("%w: currency must be COP or USD", ErrValidation)
	}
	travelDate, err := time.Parse(availability.DateFormat, req.TravelDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: travel_date must be YYYY-MM-DD", ErrValidation)
	}
	return travelDate, nil
}

func (s *bookingService) Availability(ctx context.Context, experienceID string) (map[string]int, error) {
	if experienceID == "" {
		return nil, fmt.Errorf("%w: experienceId is required", ErrValidation)
	}
	entries, err := s.bookingRepo.ListNonCancelledFuture(ctx, experienceID, availability.Today())
	if err != nil {
		return nil, err
	}
	return availability.Aggregate(entries), nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, experienceID string, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, experienceID, status)
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	if _, err := s.bookingRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.bookingRepo.Delete(ctx, id)
}
