package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/linkup-social/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImportLegacyDump loads a mongoexport-style dump of the original MongoDB
// deployment (one extended-JSON array per collection) into the relational
// schema. ObjectIDs become the string primary keys, so references survive.
func ImportLegacyDump(db *gorm.DB, zr *zip.Reader) error {
	collections := map[string][]bson.M{}
	for _, file := range zr.File {
		name := strings.TrimSuffix(path.Base(file.Name), ".json")
		switch name {
		case "users", "posts", "comments", "conversations", "messages":
		default:
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}

		docs, err := decodeLegacyDocs(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", file.Name, err)
		}
		collections[name] = docs
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback().Error
		}
	}()

	for _, doc := range collections["users"] {
		if err := importUser(tx, doc); err != nil {
			return err
		}
	}
	// second pass so follow edges only reference imported users
	for _, doc := range collections["users"] {
		if err := importFollowEdges(tx, doc); err != nil {
			return err
		}
	}
	for _, doc := range collections["posts"] {
		if err := upsert(tx, legacyPost(doc)); err != nil {
			return err
		}
	}
	for _, doc := range collections["comments"] {
		if err := upsert(tx, legacyComment(doc)); err != nil {
			return err
		}
	}
	for _, doc := range collections["conversations"] {
		if err := importConversation(tx, doc); err != nil {
			return err
		}
	}
	for _, doc := range collections["messages"] {
		if err := upsert(tx, legacyMessage(doc)); err != nil {
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	committed = true
	return nil
}

// decodeLegacyDocs parses an extended-JSON array of documents. The array is
// wrapped in a document because the bson codec only decodes documents at the
// top level.
func decodeLegacyDocs(data []byte) ([]bson.M, error) {
	wrapped := append(append([]byte(`{"docs":`), data...), '}')
	var out struct {
		Docs []bson.M `bson:"docs"`
	}
	if err := bson.UnmarshalExtJSON(wrapped, false, &out); err != nil {
		return nil, err
	}
	return out.Docs, nil
}

func upsert(tx *gorm.DB, row interface{}) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(row).Error
}

func insertIgnored(tx *gorm.DB, table string, row map[string]interface{}) error {
	return tx.Table(table).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

func importUser(tx *gorm.DB, doc bson.M) error {
	u := models.UserModel{
		Base:        legacyBase(doc),
		FirstName:   docString(doc, "firstName"),
		LastName:    docString(doc, "lastName"),
		Email:       strings.ToLower(docString(doc, "email")),
		Password:    docString(doc, "password"),
		ProfilePic:  docString(doc, "profilePic"),
		CoverPic:    docString(doc, "coverPic"),
		Photos:      docStrings(doc, "photos"),
		BirthYear:   int(docFloat(doc, "birthYear")),
		CatchPhrase: docString(doc, "catchPhrase"),
	}
	if loc, ok := doc["location"].(bson.M); ok {
		u.Location.City = docString(loc, "city")
		u.Location.State = docString(loc, "state")
		if coords, ok := loc["coordinates"].(bson.A); ok && len(coords) >= 2 {
			u.Location.Lng = anyFloat(coords[0])
			u.Location.Lat = anyFloat(coords[1])
		}
	}
	return upsert(tx, &u)
}

func importFollowEdges(tx *gorm.DB, doc bson.M) error {
	userID := docID(doc)
	for _, friendID := range docIDs(doc, "following") {
		if err := insertIgnored(tx, "user_following", map[string]interface{}{
			"user_id":   userID,
			"friend_id": friendID,
		}); err != nil {
			return err
		}
	}
	for _, followerID := range docIDs(doc, "followers") {
		if err := insertIgnored(tx, "user_followers", map[string]interface{}{
			"user_id":     userID,
			"follower_id": followerID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func legacyPost(doc bson.M) *models.PostModel {
	p := &models.PostModel{
		Base:       legacyBase(doc),
		ToUserID:   oidString(doc["toUser"]),
		FromUserID: oidString(doc["fromUser"]),
		Desc:       docString(doc, "desc"),
		Likes:      docIDs(doc, "likes"),
	}
	if img := docString(doc, "image"); img != "" {
		p.Image = &img
	}
	return p
}

func legacyComment(doc bson.M) *models.CommentModel {
	cm := &models.CommentModel{
		Base:    legacyBase(doc),
		PostID:  oidString(doc["post"]),
		UserID:  oidString(doc["user"]),
		Comment: docString(doc, "comment"),
	}
	if reactions, ok := doc["reactions"].(bson.M); ok {
		cm.Reactions = models.Reactions{
			ThumbsUp:  int(docFloat(reactions, "thumbsUp")),
			Heart:     int(docFloat(reactions, "heart")),
			Rocket:    int(docFloat(reactions, "rocket")),
			Eyes:      int(docFloat(reactions, "eyes")),
			Lol:       int(docFloat(reactions, "lol")),
			Hooray:    int(docFloat(reactions, "hooray")),
			AngryFace: int(docFloat(reactions, "angryFace")),
			SadFace:   int(docFloat(reactions, "sadFace")),
		}
	}
	return cm
}

func importConversation(tx *gorm.DB, doc bson.M) error {
	conv := models.ConversationModel{Base: legacyBase(doc)}
	if err := upsert(tx, &conv); err != nil {
		return err
	}
	for _, memberID := range docIDs(doc, "members") {
		if err := insertIgnored(tx, "conversation_members", map[string]interface{}{
			"conversation_model_id": conv.ID,
			"user_model_id":         memberID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func legacyMessage(doc bson.M) *models.MessageModel {
	read, _ := doc["read"].(bool)
	return &models.MessageModel{
		Base:           legacyBase(doc),
		ConversationID: oidString(doc["conversationId"]),
		SenderID:       oidString(doc["sender"]),
		Text:           docString(doc, "text"),
		Read:           read,
	}
}

func legacyBase(doc bson.M) models.Base {
	return models.Base{
		ID:        docID(doc),
		CreatedAt: docTime(doc, "createdAt"),
		UpdatedAt: docTime(doc, "updatedAt"),
	}
}

func docID(doc bson.M) string { return oidString(doc["_id"]) }

// oidString renders an ObjectID (or a plain string id) as the char(36) key.
func oidString(v interface{}) string {
	switch typed := v.(type) {
	case primitive.ObjectID:
		return typed.Hex()
	case string:
		return typed
	case bson.M:
		// nested populated reference; its own _id wins
		return oidString(typed["_id"])
	default:
		return ""
	}
}

func docIDs(doc bson.M, key string) []string {
	arr, ok := doc[key].(bson.A)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if id := oidString(v); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func docString(doc bson.M, key string) string {
	s, _ := doc[key].(string)
	return s
}

func docStrings(doc bson.M, key string) []string {
	arr, ok := doc[key].(bson.A)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func docFloat(doc bson.M, key string) float64 { return anyFloat(doc[key]) }

func anyFloat(v interface{}) float64 {
	switch typed := v.(type) {
	case float64:
		return typed
	case int32:
		return float64(typed)
	case int64:
		return float64(typed)
	case int:
		return float64(typed)
	default:
		return 0
	}
}

func docTime(doc bson.M, key string) time.Time {
	switch typed := doc[key].(type) {
	case primitive.DateTime:
		return typed.Time()
	case time.Time:
		return typed
	default:
		return time.Time{}
	}
}
