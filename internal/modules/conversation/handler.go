package conversation

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/middleware"
	"github.com/linkup-social/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the authenticated conversation endpoints.
func (h *Handler) RegisterRoutes(conversations *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := conversations.Group("", authMW)
	a.GET("", h.list)
	a.GET("/:friendId", h.between)
}

// GET /conversations
func (h *Handler) list(c *gin.Context) {
	convs, err := h.svc.ListForUser(middleware.CurrentUser(c).ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"conversations": convs})
}

// GET /conversations/:friendId
func (h *Handler) between(c *gin.Context) {
	conv, err := h.svc.FindBetween(middleware.CurrentUser(c).ID, c.Param("friendId"))
	if err != nil {
		if errors.Is(err, errNoConversation) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"conversations": conv})
}
