package dto

import "gorm.io/datatypes"

type CreateBookingRequest struct {
	ExperienceID  string  `json:"experience_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
	TravelDate    string  `json:"travel_date"` // YYYY-MM-DD
	GuestsCount   int     `json:"guests_count"`
	TotalAmount   float64 `json:"total_amount"`
	Currency      string  `json:"currency,omitempty"`
	// Status is ignored: bookings are always created pending.
	Status string `json:"status,omitempty"`
}

type UpsertExperienceRequest struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	PriceCOP     float64  `json:"price_cop"`
	PriceUSD     float64  `json:"price_usd"`
	MaxCapacity  int      `json:"max_capacity"`
	LocationName string   `json:"location_name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Includes     []string `json:"includes"`
	Excludes     []string `json:"excludes"`
	ImageURL     string   `json:"image_url"`
	Gallery      []string `json:"gallery"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// JSONStrings adapts a plain string slice to the jsonb column type.
func JSONStrings(s []string) datatypes.JSONSlice[string] {
	if s == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](s)
}
