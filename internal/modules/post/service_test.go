package post

import (
	"testing"

	"github.com/linkup-social/core/internal/models"
	"github.com/linkup-social/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.PostModel{},
		&models.CommentModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, first string) *models.UserModel {
	t.Helper()
	u := &models.UserModel{
		FirstName: first,
		LastName:  "Tester",
		Email:     first + "@example.com",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ada := seedUser(t, db, "ada")
	grace := seedUser(t, db, "grace")

	p, err := svc.Create(&CreatePostDTO{To: grace.ID, From: ada.ID, Desc: "hello wall"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello wall", p.Desc)
	assert.NotNil(t, p.Likes)
	assert.Empty(t, p.Likes)
	require.NotNil(t, p.ToUser)
	assert.Equal(t, "grace", p.ToUser.FirstName)
	require.NotNil(t, p.FromUser)
	assert.Equal(t, "ada", p.FromUser.FirstName)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestGetMissing(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, errPostNotFound)
}

func TestListByWall(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ada := seedUser(t, db, "ada")
	grace := seedUser(t, db, "grace")

	_, err := svc.Create(&CreatePostDTO{To: grace.ID, From: ada.ID, Desc: "for grace"}, nil)
	require.NoError(t, err)
	_, err = svc.Create(&CreatePostDTO{To: ada.ID, From: ada.ID, Desc: "own wall"}, nil)
	require.NoError(t, err)

	posts, err := svc.ListByWall(grace.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "for grace", posts[0].Desc)

	all, meta, err := svc.ListAll(pagination.Query{Page: 1, Size: 20})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), meta.Total)
	assert.False(t, meta.HasNextPage)
}

func TestLikeAndDislike(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ada := seedUser(t, db, "ada")
	grace := seedUser(t, db, "grace")

	p, err := svc.Create(&CreatePostDTO{To: grace.ID, From: ada.ID, Desc: "like me"}, nil)
	require.NoError(t, err)

	liked, err := svc.Like(p.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ada.ID}, liked.Likes)

	// a second like from the same user is rejected
	_, err = svc.Like(p.ID, ada.ID)
	assert.ErrorIs(t, err, errAlreadyLiked)

	_, err = svc.Like(p.ID, grace.ID)
	require.NoError(t, err)

	disliked, err := svc.Dislike(p.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{grace.ID}, disliked.Likes)

	// disliking when not in the list is a no-op
	again, err := svc.Dislike(p.ID, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{grace.ID}, again.Likes)

	// the stored column must decode back as a list, not a raw string
	reloaded, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{grace.ID}, reloaded.Likes)
}

func TestDeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ada := seedUser(t, db, "ada")

	p, err := svc.Create(&CreatePostDTO{To: ada.ID, From: ada.ID, Desc: "doomed"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.CommentModel{
		PostID:  p.ID,
		UserID:  ada.ID,
		Comment: "nice post",
	}).Error)

	require.NoError(t, svc.Delete(p.ID))

	_, err = svc.Get(p.ID)
	assert.ErrorIs(t, err, errPostNotFound)

	var count int64
	db.Model(&models.CommentModel{}).Where("post_id = ?", p.ID).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(p.ID), errPostNotFound)
}
