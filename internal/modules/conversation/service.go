package conversation

import (
	"errors"

	"github.com/linkup-social/core/internal/models"
	"gorm.io/gorm"
)

var errNoConversation = errors.New("There are no conversations with this friend. Start chatting by searching for their name")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) withMembers() *gorm.DB {
	return s.db.Preload("Members", models.SelectPublicUser)
}

// ListForUser returns every conversation the user is a member of.
func (s *Service) ListForUser(userID string) ([]models.ConversationModel, error) {
	var convs []models.ConversationModel
	err := s.withMembers().
		Joins("JOIN conversation_members cm ON cm.conversation_model_id = conversations.id").
		Where("cm.user_model_id = ?", userID).
		Order("conversations.updated_at DESC").
		Find(&convs).Error
	return convs, err
}

// FindBetween returns the conversation both users are members of.
func (s *Service) FindBetween(userID, friendID string) (*models.ConversationModel, error) {
	var conv models.ConversationModel
	err := s.withMembers().
		Joins("JOIN conversation_members a ON a.conversation_model_id = conversations.id AND a.user_model_id = ?", userID).
		Joins("JOIN conversation_members b ON b.conversation_model_id = conversations.id AND b.user_model_id = ?", friendID).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNoConversation
		}
		return nil, err
	}
	return &conv, nil
}

// Create starts a conversation between the given members.
func (s *Service) Create(memberIDs ...string) (*models.ConversationModel, error) {
	conv := models.ConversationModel{}
	for _, id := range memberIDs {
		conv.Members = append(conv.Members, &models.UserModel{Base: models.Base{ID: id}})
	}
	if err := s.db.Omit("Members.*").Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// Exists reports whether a conversation id is known.
func (s *Service) Exists(id string) (bool, error) {
	var count int64
	err := s.db.Model(&models.ConversationModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
