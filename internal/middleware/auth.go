package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/models"
	"github.com/linkup-social/core/internal/pkg/jwt"
	"github.com/linkup-social/core/internal/pkg/response"
	"gorm.io/gorm"
)

const ContextKeyUser = "current_user"

// Auth returns a middleware that enforces JWT authentication and loads the
// token's user onto the request context.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userFromToken(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c, err.Error())
			return
		}
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) *models.UserModel {
	v, _ := c.Get(ContextKeyUser)
	u, _ := v.(*models.UserModel)
	return u
}

func userFromToken(db *gorm.DB, token string) (*models.UserModel, error) {
	if token == "" {
		return nil, errors.New("Oops! Access is Forbidden. Please login.")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}

	var u models.UserModel
	if err := db.First(&u, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("User belonging to this token does not exist")
		}
		return nil, err
	}
	return &u, nil
}

func extractToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
