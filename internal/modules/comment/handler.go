package comment

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/middleware"
	"github.com/linkup-social/core/internal/pkg/response"
)

// CreateCommentDTO is the comment creation payload. Post and user default to
// the route parameter and the authenticated user when omitted.
type CreateCommentDTO struct {
	Post    string `json:"post"`
	User    string `json:"user"`
	Comment string `json:"comment" binding:"required"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the nested comment routes under a post.
func (h *Handler) RegisterRoutes(posts *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := posts.Group("/:postId/comments", authMW)
	g.GET("", h.list)
	g.POST("", h.create)
}

// GET /posts/:postId/comments
func (h *Handler) list(c *gin.Context) {
	comments, err := h.svc.ListByPost(c.Param("postId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

// POST /posts/:postId/comments
func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Post == "" {
		dto.Post = c.Param("postId")
	}
	if dto.User == "" {
		dto.User = middleware.CurrentUser(c).ID
	}

	cm, err := h.svc.Create(dto.Post, dto.User, dto.Comment)
	if err != nil {
		if errors.Is(err, errCommentInvalid) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"comment": cm})
}
