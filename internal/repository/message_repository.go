package repository

import (
	"errors"
	"time"

	"github.com/dresspalette/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepository) GetMessageByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("User").Where("id = ?", id).First(&message).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &message, nil
}

func (r *MessageRepository) ListMessages() ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) ListMessagesByUser(userID uuid.UUID, limit int) ([]models.Message, error) {
	query := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []models.Message
	err := query.Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) RecentMessages(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.Message{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// SetReply writes the reply, its timestamp and the read flag in one update.
// The three fields always change together; a later reply overwrites the
// previous one.
func (r *MessageRepository) SetReply(id uuid.UUID, reply string, repliedAt time.Time) error {
	return r.db.Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"admin_reply": reply,
			"replied_at":  repliedAt,
			"read":        true,
		}).Error
}

func (r *MessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

func (r *MessageRepository) CountMessages() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}
