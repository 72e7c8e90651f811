package service

import (
	"errors"
	"strings"
	"time"

	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptySubject    = errors.New("subject is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrEmptyReply      = errors.New("reply is required")
)

// MessageService implements the user-to-admin message workflow:
// unread -> read -> replied. A message always starts unread with no reply,
// and replying marks it read in the same update.
type MessageService struct {
	messageRepo *repository.MessageRepository
}

func NewMessageService(messageRepo *repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

func (s *MessageService) SendMessage(userID uuid.UUID, subject, content string) (*models.Message, error) {
	subject = strings.TrimSpace(subject)
	content = strings.TrimSpace(content)
	if subject == "" {
		return nil, ErrEmptySubject
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	msg := &models.Message{
		UserID:  userID,
		Subject: subject,
		Content: content,
		Read:    false,
	}

	if err := s.messageRepo.CreateMessage(msg); err != nil {
		logger.Log.Error("Failed to create message",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Message sent",
		zap.String("message_id", msg.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return msg, nil
}

func (s *MessageService) ListMessagesForUser(userID uuid.UUID) ([]models.Message, error) {
	return s.messageRepo.ListMessagesByUser(userID, 0)
}

func (s *MessageService) ListAllMessages() ([]models.Message, error) {
	return s.messageRepo.ListMessages()
}

// MarkRead flags a message as seen. Opening a message in the admin console
// triggers this as a side effect.
func (s *MessageService) MarkRead(id uuid.UUID) error {
	msg, err := s.messageRepo.GetMessageByID(id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}

	if err := s.messageRepo.MarkRead(id); err != nil {
		logger.Log.Error("Failed to mark message read",
			zap.String("message_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// Reply stores the admin's answer. The reply text, replied_at and the read
// flag are written in a single update; replying again overwrites the previous
// reply rather than appending to a thread.
func (s *MessageService) Reply(id uuid.UUID, reply string, adminID uuid.UUID) (*models.Message, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, ErrEmptyReply
	}

	msg, err := s.messageRepo.GetMessageByID(id)
	if err != nil {
		logger.Log.Error("Failed to load message",
			zap.String("message_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}

	now := time.Now()
	if err := s.messageRepo.SetReply(id, reply, now); err != nil {
		logger.Log.Error("Failed to store reply",
			zap.String("message_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Message replied",
		zap.String("message_id", id.String()),
		zap.String("admin_id", adminID.String()),
	)

	msg.AdminReply = &reply
	msg.RepliedAt = &now
	msg.Read = true
	return msg, nil
}
