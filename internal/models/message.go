package models

// MessageModel represents one message inside a conversation.
type MessageModel struct {
	Base
	ConversationID string     `json:"conversationId" gorm:"index;not null"`
	SenderID       string     `json:"-"              gorm:"index;not null"`
	Sender         *UserModel `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Text           string     `json:"text"           gorm:"type:varchar(500)"`
	Read           bool       `json:"read"           gorm:"default:false"`
}

func (MessageModel) TableName() string { return "messages" }
