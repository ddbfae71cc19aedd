package message

import (
	"github.com/linkup-social/core/internal/models"
	"github.com/linkup-social/core/internal/modules/conversation"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	convs *conversation.Service
}

func NewService(db *gorm.DB, convs *conversation.Service) *Service {
	return &Service{db: db, convs: convs}
}

// ListByConversation returns the messages of a conversation, oldest first.
func (s *Service) ListByConversation(conversationID string) ([]models.MessageModel, error) {
	var msgs []models.MessageModel
	err := s.db.
		Preload("Sender", models.SelectPublicUser).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// Create appends a message. When the conversation id is unknown a new
// conversation between sender and receiver is started first.
func (s *Service) Create(conversationID, senderID, receiverID, text string) (*models.MessageModel, error) {
	exists := false
	if conversationID != "" {
		var err error
		exists, err = s.convs.Exists(conversationID)
		if err != nil {
			return nil, err
		}
	}
	if !exists {
		conv, err := s.convs.Create(senderID, receiverID)
		if err != nil {
			return nil, err
		}
		conversationID = conv.ID
	}

	msg := models.MessageModel{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	err := s.db.Preload("Sender", models.SelectPublicUser).
		First(&msg, "id = ?", msg.ID).Error
	return &msg, err
}
