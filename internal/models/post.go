package models

// PostModel represents a wall post sent from one user to another
// (posting on your own wall sets both sides to yourself).
type PostModel struct {
	Base
	ToUserID   string         `json:"-"          gorm:"index;not null"`
	FromUserID string         `json:"-"          gorm:"index;not null"`
	ToUser     *UserModel     `json:"toUser,omitempty"   gorm:"foreignKey:ToUserID"`
	FromUser   *UserModel     `json:"fromUser,omitempty" gorm:"foreignKey:FromUserID"`
	Desc       string         `json:"desc"       gorm:"type:varchar(500)"`
	Image      *string        `json:"image"`
	Likes      []string       `json:"likes"      gorm:"type:longtext;serializer:json"`
	Comments   []CommentModel `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

func (PostModel) TableName() string { return "posts" }
