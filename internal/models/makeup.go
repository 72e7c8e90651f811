package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MakeupCategory string

const (
	MakeupBridal         MakeupCategory = "bridal"
	MakeupParty          MakeupCategory = "party"
	MakeupEditorial      MakeupCategory = "editorial"
	MakeupNatural        MakeupCategory = "natural"
	MakeupSpecialEffects MakeupCategory = "special_effects"
	MakeupOther          MakeupCategory = "other"
)

func (c MakeupCategory) Valid() bool {
	switch c {
	case MakeupBridal, MakeupParty, MakeupEditorial, MakeupNatural, MakeupSpecialEffects, MakeupOther:
		return true
	}
	return false
}

type MakeupService struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string         `gorm:"type:varchar(200);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        MakeupCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Price           float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int            `gorm:"not null" json:"duration_minutes"`
	ImageURL        string         `gorm:"type:varchar(500)" json:"image_url"`
	Available       bool           `gorm:"default:true;index" json:"available"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (s *MakeupService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// MakeupAppointment books a client with a service for a date/time pair.
// Same lifecycle as dress bookings; only admins move the status.
type MakeupAppointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ServiceID       uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	AppointmentDate string    `gorm:"type:varchar(10);not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:varchar(5);not null" json:"appointment_time"`
	Status          Status    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Service *MakeupService `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	User    *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (a *MakeupAppointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
