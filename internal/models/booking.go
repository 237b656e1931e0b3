package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
)

func ValidCurrency(c Currency) bool {
	return c == CurrencyCOP || c == CurrencyUSD
}

var validNext = map[BookingStatus]map[BookingStatus]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCancelled: true},
	StatusCancelled: {},
}

// CanTransition reports whether an admin status update from -> to is allowed.
func CanTransition(from, to BookingStatus) bool {
	return validNext[from][to]
}

type Booking struct {
	ID            string        `gorm:"type:uuid;primaryKey" json:"id"`
	ExperienceID  string        `gorm:"type:uuid;not null;index" json:"experience_id"`
	CustomerName  string        `gorm:"not null" json:"customer_name"`
	CustomerEmail string        `gorm:"not null" json:"customer_email"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	TravelDate    time.Time     `gorm:"type:date;not null" json:"travel_date"`
	GuestsCount   int           `gorm:"not null" json:"guests_count"`
	TotalAmount   float64       `gorm:"not null" json:"total_amount"`
	Currency      Currency      `gorm:"type:varchar(3);not null;default:'COP'" json:"currency"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Experience *Experience `gorm:"foreignKey:ExperienceID" json:"experience,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// LedgerEntry is one row of the capacity ledger: how many guests one
// non-cancelled booking holds on one travel date.
type LedgerEntry struct {
	TravelDate  time.Time `gorm:"type:date"`
	GuestsCount int
}
