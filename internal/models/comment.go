package models

// Reactions holds per-emoji reaction counters for a comment.
type Reactions struct {
	ThumbsUp  int `json:"thumbsUp"`
	Heart     int `json:"heart"`
	Rocket    int `json:"rocket"`
	Eyes      int `json:"eyes"`
	Lol       int `json:"lol"`
	Hooray    int `json:"hooray"`
	AngryFace int `json:"angryFace"`
	SadFace   int `json:"sadFace"`
}

// CommentModel represents a comment on a post.
type CommentModel struct {
	Base
	PostID    string     `json:"post"     gorm:"index;not null"`
	UserID    string     `json:"-"        gorm:"index;not null"`
	User      *UserModel `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Comment   string     `json:"comment"  gorm:"type:varchar(1000);not null"`
	Reactions Reactions  `json:"reactions" gorm:"embedded;embeddedPrefix:reaction_"`
}

func (CommentModel) TableName() string { return "comments" }
