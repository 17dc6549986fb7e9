package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
)

type Barber struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EnterpriseID uint       `gorm:"index;not null" json:"enterprise_id"`
	Enterprise   Enterprise `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BranchID *uint   `json:"branch_id"`
	Branch   *Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch,omitempty"`
	BoxID    *uint   `json:"box_id"`
	Box      *Box    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"box,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'barber'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	AvailableHours []AvailableHour `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"available_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailableHour is one recurring weekly window. Weekday follows time.Weekday
// (0 = Sunday); times are "HH:MM" in the enterprise zone.
type AvailableHour struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_available_hours_barber_weekday;not null" json:"barber_id"`

	Weekday   int    `gorm:"index:idx_available_hours_barber_weekday" json:"weekday"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
