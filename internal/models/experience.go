package models

import (
	"time"

	"gorm.io/datatypes"
)

// Fallback coordinates (Santa Marta, Colombia) used when an experience row
// carries no location.
const (
	FallbackLatitude  = 11.24079
	FallbackLongitude = -74.19904
)

type Experience struct {
	ID           string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                      `gorm:"not null" json:"title"`
	Slug         string                      `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string                      `gorm:"type:text" json:"description"`
	PriceCOP     float64                     `json:"price_cop"`
	PriceUSD     float64                     `json:"price_usd"`
	MaxCapacity  int                         `gorm:"not null" json:"max_capacity"`
	LocationName string                      `json:"location_name"`
	Latitude     float64                     `json:"latitude"`
	Longitude    float64                     `json:"longitude"`
	Includes     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"includes"`
	Excludes     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"excludes"`
	ImageURL     string                      `json:"image_url"`
	Gallery      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"gallery"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (Experience) TableName() string { return "experiences" }
