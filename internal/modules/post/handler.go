package post

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkup-social/core/internal/middleware"
	"github.com/linkup-social/core/internal/pkg/images"
	"github.com/linkup-social/core/internal/pkg/pagination"
	"github.com/linkup-social/core/internal/pkg/response"
)

type Handler struct {
	svc       *Service
	imagesDir string
}

func NewHandler(svc *Service, imagesDir string) *Handler {
	return &Handler{svc: svc, imagesDir: imagesDir}
}

// RegisterRoutes mounts the authenticated post endpoints.
func (h *Handler) RegisterRoutes(posts *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := posts.Group("", authMW)

	a.GET("", h.list)
	a.POST("", h.create)
	a.GET("/:postId", h.get)
	a.DELETE("/:postId", h.delete)
	a.PUT("/:postId/like", h.like)
	a.PUT("/:postId/dislike", h.dislike)
	a.GET("/friends/:userId", h.wall)
}

// GET /posts
func (h *Handler) list(c *gin.Context) {
	posts, meta, err := h.svc.ListAll(pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts, "pagination": meta})
}

// GET /posts/friends/:userId
func (h *Handler) wall(c *gin.Context) {
	posts, err := h.svc.ListByWall(c.Param("userId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

// GET /posts/:postId
func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Param("postId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"post": p})
}

// POST /posts - multipart form, optional image
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, ok := middleware.ReadImageUpload(c, "image")
	if !ok {
		return
	}

	var image *string
	if data != nil {
		filename := "post-" + uuid.NewString() + ".jpeg"
		if err := images.ResizeToFile(data, images.ProfileSize, h.imagesDir, filename); err != nil {
			response.InternalError(c, err)
			return
		}
		image = &filename
	}

	p, err := h.svc.Create(&dto, image)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"post": p})
}

// PUT /posts/:postId/like
func (h *Handler) like(c *gin.Context) {
	p, err := h.svc.Like(c.Param("postId"), middleware.CurrentUser(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"post": p, "user": middleware.CurrentUser(c).ID})
}

// PUT /posts/:postId/dislike
func (h *Handler) dislike(c *gin.Context) {
	p, err := h.svc.Dislike(c.Param("postId"), middleware.CurrentUser(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"post": p, "user": middleware.CurrentUser(c).ID})
}

// DELETE /posts/:postId - removes the post and its comments
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("postId")); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, errAlreadyLiked):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
