package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DressCategory string

const (
	DressBridal  DressCategory = "bridal"
	DressParty   DressCategory = "party"
	DressCasual  DressCategory = "casual"
	DressEthnic  DressCategory = "ethnic"
	DressWestern DressCategory = "western"
	DressFusion  DressCategory = "fusion"
	DressOther   DressCategory = "other"
)

func (c DressCategory) Valid() bool {
	switch c {
	case DressBridal, DressParty, DressCasual, DressEthnic, DressWestern, DressFusion, DressOther:
		return true
	}
	return false
}

// Dress is a catalog item. Admin-owned; the public surface only reads it.
type Dress struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(200);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Category    DressCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Price       *float64      `gorm:"type:decimal(10,2)" json:"price"`
	RentalPrice *float64      `gorm:"type:decimal(10,2)" json:"rental_price"`
	Images      StringList    `gorm:"type:text" json:"images"`
	Sizes       StringList    `gorm:"type:text" json:"sizes"`
	Colors      StringList    `gorm:"type:text" json:"colors"`
	Available   bool          `gorm:"default:true;index" json:"available"`
	Featured    bool          `gorm:"default:false;index" json:"featured"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (d *Dress) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
