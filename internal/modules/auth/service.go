package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/linkup-social/core/internal/models"
	"github.com/linkup-social/core/internal/pkg/geocode"
	jwtpkg "github.com/linkup-social/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type Service struct {
	db       *gorm.DB
	geocoder *geocode.Client
	tokenTTL time.Duration
}

func NewService(db *gorm.DB, geocoder *geocode.Client, tokenTTL time.Duration) *Service {
	return &Service{db: db, geocoder: geocoder, tokenTTL: tokenTTL}
}

// Signup geocodes the address, creates the user and signs a token.
func (s *Service) Signup(ctx context.Context, dto *SignupDTO) (*models.UserModel, string, error) {
	coords, err := s.geocoder.Resolve(ctx, dto.City+" "+dto.State+", "+dto.Zip)
	if err != nil {
		return nil, "", errNoCoordinates
	}

	var count int64
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, "", errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	u := models.UserModel{
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      email,
		Password:   string(hash),
		ProfilePic: models.DefaultProfilePic,
		CoverPic:   models.DefaultProfilePic,
		Location: models.Location{
			Lng:   coords.Lng,
			Lat:   coords.Lat,
			City:  dto.City,
			State: dto.State,
		},
		BirthYear:   dto.BirthYear,
		CatchPhrase: models.DefaultCatchPhrase,
	}
	if err := s.db.Create(&u).Error; err != nil {
		// two signups racing past the count check land here
		var mysqlErr *mysqlDriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, "", errEmailTaken
		}
		return nil, "", err
	}

	token, err := jwtpkg.Sign(u.ID, s.tokenTTL)
	return &u, token, err
}

// Login verifies credentials and returns the user (with following populated)
// plus a fresh token.
func (s *Service) Login(email, password string) (*models.UserModel, string, error) {
	var u models.UserModel
	err := s.db.Preload("Following", func(db *gorm.DB) *gorm.DB {
		return db.Select(models.PublicUserFields)
	}).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errIncorrectCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", errIncorrectCredentials
	}

	token, err := jwtpkg.Sign(u.ID, s.tokenTTL)
	return &u, token, err
}

// WallPosts loads a user's wall posts with comments and populated refs.
func (s *Service) WallPosts(userID string) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.
		Preload("Comments").
		Preload("ToUser", models.SelectPublicUser).
		Preload("FromUser", models.SelectPublicUser).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
