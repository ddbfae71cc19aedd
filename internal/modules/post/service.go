package post

import (
	"errors"

	"github.com/linkup-social/core/internal/models"
	"github.com/linkup-social/core/internal/pkg/pagination"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) withRefs() *gorm.DB {
	return s.db.
		Preload("Comments").
		Preload("Comments.User", models.SelectPublicUser).
		Preload("ToUser", models.SelectPublicUser).
		Preload("FromUser", models.SelectPublicUser)
}

// ListAll returns a page of the global feed, newest first.
func (s *Service) ListAll(q pagination.Query) ([]models.PostModel, pagination.Meta, error) {
	var posts []models.PostModel
	meta, err := pagination.Paginate(
		s.withRefs().Model(&models.PostModel{}).Order("created_at DESC"), q, &posts)
	return posts, meta, err
}

// ListByWall returns the posts addressed to one user.
func (s *Service) ListByWall(userID string) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.withRefs().Where("to_user_id = ?", userID).
		Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Get loads one post with comments and user refs.
func (s *Service) Get(id string) (*models.PostModel, error) {
	var p models.PostModel
	if err := s.withRefs().First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create stores a new post and returns it with refs populated.
func (s *Service) Create(dto *CreatePostDTO, image *string) (*models.PostModel, error) {
	p := models.PostModel{
		ToUserID:   dto.To,
		FromUserID: dto.From,
		Desc:       dto.Desc,
		Image:      image,
		Likes:      []string{},
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return s.Get(p.ID)
}

// Like appends userID to the post's like list, once.
func (s *Service) Like(postID, userID string) (*models.PostModel, error) {
	p, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	for _, id := range p.Likes {
		if id == userID {
			return nil, errAlreadyLiked
		}
	}
	p.Likes = append(p.Likes, userID)
	// update through the struct so the json serializer on Likes applies
	if err := s.db.Model(p).Select("likes").Updates(&models.PostModel{Likes: p.Likes}).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Dislike removes userID from the post's like list.
func (s *Service) Dislike(postID, userID string) (*models.PostModel, error) {
	p, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	kept := p.Likes[:0]
	for _, id := range p.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	p.Likes = kept
	if err := s.db.Model(p).Select("likes").Updates(&models.PostModel{Likes: p.Likes}).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post and its comments.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.PostModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errPostNotFound
	}
	return s.db.Delete(&models.CommentModel{}, "post_id = ?", id).Error
}
