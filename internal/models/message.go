package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a depth-1 thread from a user to the studio. It starts unread
// with no reply; the admin reply overwrites any previous one (no history).
// AdminReply and RepliedAt are always written together, never independently.
type Message struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject    string     `gorm:"type:varchar(200);not null" json:"subject"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Read       bool       `gorm:"default:false;index" json:"read"`
	AdminReply *string    `gorm:"type:text" json:"admin_reply"`
	RepliedAt  *time.Time `json:"replied_at"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
