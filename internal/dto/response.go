package dto

import (
	"time"

	"github.com/costeratours/experience-service/internal/models"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	ExperienceID  string               `json:"experience_id"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	TravelDate    string               `json:"travel_date"`
	GuestsCount   int                  `json:"guests_count"`
	TotalAmount   float64              `json:"total_amount"`
	Currency      models.Currency      `json:"currency"`
	Status        models.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

type AvailabilityResponse struct {
	Availability map[string]int `json:"availability"`
}

// DateCapacity is one date of the admin availability view.
type DateCapacity struct {
	Booked    int `json:"booked"`
	Remaining int `json:"remaining"`
}

type CapacityResponse struct {
	ExperienceID string                  `json:"experience_id"`
	MaxCapacity  int                     `json:"max_capacity"`
	Dates        map[string]DateCapacity `json:"dates"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ExperienceID:  b.ExperienceID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TravelDate:    b.TravelDate.Format("2006-01-02"),
		GuestsCount:   b.GuestsCount,
		TotalAmount:   b.TotalAmount,
		Currency:      b.Currency,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}
