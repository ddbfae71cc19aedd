package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linkup-social/core/internal/middleware"
	"github.com/linkup-social/core/internal/modules/auth"
	"github.com/linkup-social/core/internal/modules/comment"
	"github.com/linkup-social/core/internal/modules/conversation"
	"github.com/linkup-social/core/internal/modules/gateway"
	"github.com/linkup-social/core/internal/modules/message"
	"github.com/linkup-social/core/internal/modules/post"
	"github.com/linkup-social/core/internal/modules/storage/archive"
	"github.com/linkup-social/core/internal/modules/user"
	"github.com/linkup-social/core/internal/pkg/geocode"
	pkgredis "github.com/linkup-social/core/internal/pkg/redis"
	"github.com/linkup-social/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, fmt.Sprintf("Cannot find %s on this server!", c.Request.URL.Path))
	})

	// Shared services
	geocoder := geocode.New(a.cfg.GoogleAPIKey)
	authSvc := auth.NewService(db, geocoder, a.cfg.JWTTTL())
	userSvc := user.NewService(db)
	postSvc := post.NewService(db)
	commentSvc := comment.NewService(db)
	convSvc := conversation.NewService(db)
	msgSvc := message.NewService(db, convSvc)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rc.Raw()))

	users := api.Group("/users")
	auth.NewHandler(authSvc).RegisterRoutes(users)
	user.NewHandler(userSvc, a.cfg.ImagesDir).RegisterRoutes(users, authMW)

	posts := api.Group("/posts")
	post.NewHandler(postSvc, a.cfg.ImagesDir).RegisterRoutes(posts, authMW)
	comment.NewHandler(commentSvc).RegisterRoutes(posts, authMW)

	conversations := api.Group("/conversations")
	conversation.NewHandler(convSvc).RegisterRoutes(conversations, authMW)

	messages := api.Group("/messages")
	message.NewHandler(msgSvc).RegisterRoutes(messages, authMW)

	archive.NewHandler(db, a.logger).RegisterRoutes(api, authMW)

	// Uploaded profile, cover and post images.
	r.Static("/images", a.cfg.ImagesDir)

	gateway.RegisterRoutes(r, a.hub)
}
