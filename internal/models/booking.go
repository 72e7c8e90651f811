package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DressBooking links a user to a dress for an inclusive date range.
// Dates are ISO "2006-01-02" strings; start must not be after end.
//
// There is deliberately no overlap check between bookings of the same dress:
// two users can hold pending bookings for overlapping dates and the studio
// reconciles them manually.
type DressBooking struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	DressID     uuid.UUID `gorm:"type:uuid;not null;index" json:"dress_id"`
	StartDate   string    `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate     string    `gorm:"type:varchar(10);not null" json:"end_date"`
	Status      Status    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`
	TotalAmount *float64  `gorm:"type:decimal(10,2)" json:"total_amount"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Dress *Dress `gorm:"foreignKey:DressID" json:"dress,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (b *DressBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
