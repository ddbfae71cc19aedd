package archive

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/linkup-social/core/internal/models"
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
		&models.ConversationModel{},
		&models.MessageModel{},
	))
	return db
}

func TestWriteExport(t *testing.T) {
	db := newTestDB(t)
	u := &models.UserModel{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)

	var buf bytes.Buffer
	require.NoError(t, WriteExport(db, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"users.json", "posts.json", "comments.json", "conversations.json", "messages.json"} {
		assert.True(t, names[want], want)
	}
}

func buildLegacyZip(t *testing.T, entries map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestImportLegacyDump(t *testing.T) {
	db := newTestDB(t)

	const (
		adaID   = "64b000000000000000000001"
		graceID = "64b000000000000000000002"
		postID  = "64b000000000000000000010"
		convID  = "64b000000000000000000020"
	)

	zr := buildLegacyZip(t, map[string]string{
		"users.json": `[
			{"_id":{"$oid":"` + adaID + `"},"firstName":"Ada","lastName":"Lovelace",
			 "email":"ADA@example.com","password":"hash","profilePic":"ada.jpeg",
			 "photos":["ada.jpeg"],"birthYear":1990,"catchPhrase":"hello",
			 "location":{"type":"Point","coordinates":[-97.74,30.27],"city":"Austin","state":"TX"},
			 "following":[{"$oid":"` + graceID + `"}],
			 "createdAt":{"$date":"2023-07-14T12:00:00Z"}},
			{"_id":{"$oid":"` + graceID + `"},"firstName":"Grace","lastName":"Hopper",
			 "email":"grace@example.com","password":"hash"}
		]`,
		"posts.json": `[
			{"_id":{"$oid":"` + postID + `"},"toUser":{"$oid":"` + graceID + `"},
			 "fromUser":{"$oid":"` + adaID + `"},"desc":"imported post",
			 "likes":[{"$oid":"` + graceID + `"}]}
		]`,
		"comments.json": `[
			{"_id":{"$oid":"64b000000000000000000011"},"post":{"$oid":"` + postID + `"},
			 "user":{"$oid":"` + adaID + `"},"comment":"imported comment",
			 "reactions":{"thumbsUp":2,"heart":1}}
		]`,
		"conversations.json": `[
			{"_id":{"$oid":"` + convID + `"},
			 "members":[{"$oid":"` + adaID + `"},{"$oid":"` + graceID + `"}]}
		]`,
		"messages.json": `[
			{"_id":{"$oid":"64b000000000000000000021"},"conversationId":{"$oid":"` + convID + `"},
			 "sender":{"$oid":"` + adaID + `"},"text":"imported message","read":true}
		]`,
	})

	require.NoError(t, ImportLegacyDump(db, zr))

	var ada models.UserModel
	require.NoError(t, db.Preload("Following").First(&ada, "id = ?", adaID).Error)
	assert.Equal(t, "ada@example.com", ada.Email)
	assert.Equal(t, "Austin", ada.Location.City)
	assert.InDelta(t, -97.74, ada.Location.Lng, 1e-9)
	assert.Equal(t, []string{"ada.jpeg"}, ada.Photos)
	assert.Equal(t, 1990, ada.BirthYear)
	assert.Equal(t, 2023, ada.CreatedAt.Year())
	require.Len(t, ada.Following, 1)
	assert.Equal(t, graceID, ada.Following[0].ID)

	var post models.PostModel
	require.NoError(t, db.First(&post, "id = ?", postID).Error)
	assert.Equal(t, graceID, post.ToUserID)
	assert.Equal(t, adaID, post.FromUserID)
	assert.Equal(t, []string{graceID}, post.Likes)

	var cm models.CommentModel
	require.NoError(t, db.First(&cm, "post_id = ?", postID).Error)
	assert.Equal(t, 2, cm.Reactions.ThumbsUp)
	assert.Equal(t, 1, cm.Reactions.Heart)

	var conv models.ConversationModel
	require.NoError(t, db.Preload("Members").First(&conv, "id = ?", convID).Error)
	assert.Len(t, conv.Members, 2)

	var msg models.MessageModel
	require.NoError(t, db.First(&msg, "conversation_id = ?", convID).Error)
	assert.Equal(t, "imported message", msg.Text)
	assert.True(t, msg.Read)

	// importing the same dump twice is idempotent
	require.NoError(t, ImportLegacyDump(db, zr))
	var count int64
	db.Model(&models.UserModel{}).Count(&count)
	assert.Equal(t, int64(2), count)
}
