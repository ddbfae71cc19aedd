package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the public auth endpoints on the users group.
func (h *Handler) RegisterRoutes(users *gin.RouterGroup) {
	users.POST("/signup", h.signup)
	users.POST("/login", h.login)
}

// POST /users/signup
func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.svc.Signup(c.Request.Context(), &dto)
	if err != nil {
		switch {
		case errors.Is(err, errNoCoordinates):
			response.NotFound(c, err.Error())
		case errors.Is(err, errEmailTaken):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	posts, err := h.svc.WallPosts(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "posts": posts, "token": token})
}

// POST /users/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Email == "" || dto.Password == "" {
		response.NotFound(c, "Please provide your login email and password or go sign up")
		return
	}

	user, token, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, errIncorrectCredentials) {
			response.Error(c, http.StatusUnauthorized, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	posts, err := h.svc.WallPosts(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "token": token, "posts": posts})
}
