package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostCategory string

const (
	PostFashion   PostCategory = "fashion"
	PostMakeup    PostCategory = "makeup"
	PostSkincare  PostCategory = "skincare"
	PostLifestyle PostCategory = "lifestyle"
	PostTravel    PostCategory = "travel"
	PostFood      PostCategory = "food"
	PostOther     PostCategory = "other"
)

func (c PostCategory) Valid() bool {
	switch c {
	case PostFashion, PostMakeup, PostSkincare, PostLifestyle, PostTravel, PostFood, PostOther:
		return true
	}
	return false
}

// LifestylePost is a blog entry. Publicly visible only when Published is true;
// PublishedAt tracks the publish toggle, not creation.
type LifestylePost struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string       `gorm:"type:varchar(220);uniqueIndex;not null" json:"slug"`
	Excerpt     string       `gorm:"type:text" json:"excerpt"`
	Content     string       `gorm:"type:text" json:"content"`
	CoverImage  string       `gorm:"type:varchar(500)" json:"cover_image"`
	Category    PostCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	Tags        StringList   `gorm:"type:text" json:"tags"`
	Published   bool         `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time   `json:"published_at"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (p *LifestylePost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
