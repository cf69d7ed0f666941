package models

import (
	"encoding/json"
	"time"
)

// Sticker is a place marker with a list of picture URLs stored as JSON.
type Sticker struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Latitude  float64         `gorm:"not null" json:"latitude"`
	Longitude float64         `gorm:"not null" json:"longitude"`
	PlaceName string          `gorm:"column:place_name;size:255;not null" json:"place_name"`
	Pictures  json.RawMessage `gorm:"type:json" json:"pictures"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Sticker) TableName() string {
	return "stickers"
}
