package models

// ConversationModel represents a two-party chat thread.
type ConversationModel struct {
	Base
	Members []*UserModel `json:"members" gorm:"many2many:conversation_members"`
}

func (ConversationModel) TableName() string { return "conversations" }
