package models

import "time"

// Service is a bookable service type. Nil buffers fall back to the
// enterprise defaults.
type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	EnterpriseID uint `gorm:"index;not null" json:"enterprise_id"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"size:255" json:"description"`
	DurationMin     int     `json:"duration_min"`
	BufferBeforeMin *int    `json:"buffer_before_min"`
	BufferAfterMin  *int    `json:"buffer_after_min"`
	Price           float64 `json:"price"`
	Active          bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
