package models

import "time"

// Booking is the local snapshot of an appointment owned by the external
// booking system, kept in sync through the bookings webhook.
type Booking struct {
	ID           uint  `gorm:"primaryKey" json:"id"`
	EnterpriseID uint  `gorm:"index;not null" json:"enterprise_id"`
	BarberID     uint  `gorm:"index:idx_bookings_barber_start;not null" json:"barber_id"`
	ServiceID    *uint `json:"service_id"`

	ExternalID string `gorm:"size:64;uniqueIndex;not null" json:"external_id"`

	StartTime time.Time `gorm:"index:idx_bookings_barber_start;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
