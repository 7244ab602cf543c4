package services

import (
	"errors"
	"strings"
	"time"

	"github.com/orgchathq/orgchat-api/models"
	"gorm.io/gorm"
)

// MessagesService manages chat room message history
type MessagesService struct {
	DB *gorm.DB
}

// GetByID gets a message by id with its sender resolved
func (s *MessagesService) GetByID(messageID uint64) (*models.Message, error) {
	var message models.Message
	err := s.DB.
		Preload("Sender.User").
		First(&message, messageID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// List returns the room's messages in ascending creation order, each with
// its sender resolved down to the user's email
func (s *MessagesService) List(roomID uint64) ([]*models.Message, error) {
	var messages []*models.Message
	err := s.DB.
		Preload("Sender.User").
		Where("chat_room_id = ?", roomID).
		Order("created_date ASC, id ASC").
		Find(&messages).
		Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Post inserts a message authored by the given member with a server-assigned
// timestamp. The caller is responsible for access checks.
func (s *MessagesService) Post(roomID, senderID uint64, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	message := models.Message{
		ChatRoomID:  roomID,
		SenderID:    senderID,
		Content:     content,
		CreatedDate: time.Now(),
	}
	if err := s.DB.Create(&message).Error; err != nil {
		return nil, err
	}
	return s.GetByID(message.ID)
}

// UpdateContent edits the message body. Sender and room never change once a
// message exists.
func (s *MessagesService) UpdateContent(message *models.Message, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	message.Content = content
	return s.DB.
		Model(&models.Message{ID: message.ID}).
		Update("content", content).
		Error
}

// Delete removes the message
func (s *MessagesService) Delete(message *models.Message) error {
	return s.DB.Delete(&models.Message{}, message.ID).Error
}
