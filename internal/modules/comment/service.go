package comment

import (
	"errors"

	"github.com/linkup-social/core/internal/models"
	"gorm.io/gorm"
)

var errCommentInvalid = errors.New("Error creating the comment. Please try your request again")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListByPost returns a post's comments with their authors populated.
func (s *Service) ListByPost(postID string) ([]models.CommentModel, error) {
	var comments []models.CommentModel
	err := s.db.
		Preload("User", models.SelectPublicUser).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Create stores a comment and returns it with the author populated.
func (s *Service) Create(postID, userID, text string) (*models.CommentModel, error) {
	if len(text) < 3 || len(text) > 1000 {
		return nil, errCommentInvalid
	}

	cm := models.CommentModel{PostID: postID, UserID: userID, Comment: text}
	if err := s.db.Create(&cm).Error; err != nil {
		return nil, err
	}
	err := s.db.Preload("User", models.SelectPublicUser).
		First(&cm, "id = ?", cm.ID).Error
	return &cm, err
}

// DeleteByPost removes every comment attached to a post.
func (s *Service) DeleteByPost(postID string) error {
	return s.db.Delete(&models.CommentModel{}, "post_id = ?", postID).Error
}
