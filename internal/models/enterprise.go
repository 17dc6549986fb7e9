package models

import "time"

// Enterprise is the tenant. Its scheduling settings feed every availability
// computation for its barbers.
type Enterprise struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Timezone string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`

	DefaultServiceMin  int `gorm:"default:30" json:"default_service_min"`
	SlotGranularityMin int `gorm:"default:30" json:"slot_granularity_min"`
	BufferBeforeMin    int `gorm:"default:0" json:"buffer_before_min"`
	BufferAfterMin     int `gorm:"default:0" json:"buffer_after_min"`
	MinAdvanceMinutes  int `gorm:"default:0" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Branch struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EnterpriseID uint   `gorm:"index;not null" json:"enterprise_id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Address      string `gorm:"size:255" json:"address"`

	// Timezone overrides the enterprise zone when set.
	Timezone string `gorm:"size:64" json:"timezone"`

	Boxes []Box `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"boxes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Box is a service station (chair) inside a branch.
type Box struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BranchID uint   `gorm:"index;not null" json:"branch_id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
