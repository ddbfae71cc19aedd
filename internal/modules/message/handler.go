package message

import (
	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/middleware"
	"github.com/linkup-social/core/internal/pkg/response"
)

// CreateMessageDTO is the message creation payload.
type CreateMessageDTO struct {
	ConversationID string `json:"conversationId"`
	Sender         string `json:"sender"`
	Receiver       string `json:"reciever"` // the client spells it this way
	Text           string `json:"text" binding:"required,max=500"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the authenticated message endpoints.
func (h *Handler) RegisterRoutes(messages *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := messages.Group("", authMW)
	a.GET("/:chatId", h.list)
	a.POST("", h.create)
}

// GET /messages/:chatId
func (h *Handler) list(c *gin.Context) {
	msgs, err := h.svc.ListByConversation(c.Param("chatId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"messages": msgs})
}

// POST /messages
func (h *Handler) create(c *gin.Context) {
	var dto CreateMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Sender == "" {
		dto.Sender = middleware.CurrentUser(c).ID
	}

	msg, err := h.svc.Create(dto.ConversationID, dto.Sender, dto.Receiver, dto.Text)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"messages": msg})
}
