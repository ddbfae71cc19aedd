package user

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkup-social/core/internal/middleware"
	"github.com/linkup-social/core/internal/pkg/images"
	"github.com/linkup-social/core/internal/pkg/response"
)

type Handler struct {
	svc       *Service
	imagesDir string
}

func NewHandler(svc *Service, imagesDir string) *Handler {
	return &Handler{svc: svc, imagesDir: imagesDir}
}

// RegisterRoutes mounts the authenticated user endpoints.
func (h *Handler) RegisterRoutes(users *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := users.Group("", authMW)

	a.GET("", h.me)
	a.GET("/search", h.search)
	a.GET("/:userId", h.nearby) // :userId is a "lng,lat" pair here
	a.GET("/:userId/profile/friends", h.friendProfile)
	a.PATCH("/:userId/friends", h.friends)

	a.GET("/:userId/photos", h.photos)
	a.PUT("/:userId/photos", h.setProfilePic)
	a.POST("/:userId/photos", h.uploadProfilePhoto)
	a.PATCH("/:userId/photos", h.uploadCoverPhoto)
	a.PATCH("/photos/:pid", h.deletePhoto)
	a.PUT("/photos/:pid", h.setCoverPic)
}

// GET /users - validate the session user, return profile + wall posts.
func (h *Handler) me(c *gin.Context) {
	current := middleware.CurrentUser(c)

	user, err := h.svc.Profile(current.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	posts, err := h.svc.WallPosts(user.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "posts": posts})
}

// GET /users/:lnglat - friend suggestions near a point.
func (h *Handler) nearby(c *gin.Context) {
	parts := strings.SplitN(c.Param("userId"), ",", 2)
	if len(parts) != 2 {
		response.BadRequest(c, "Expected a lng,lat pair")
		return
	}
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLng != nil || errLat != nil {
		response.BadRequest(c, "Expected a lng,lat pair")
		return
	}

	users, err := h.svc.Nearby(lng, lat)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"users": users})
}

// GET /users/:userId/profile/friends - a friend's profile plus wall posts.
func (h *Handler) friendProfile(c *gin.Context) {
	friend, err := h.svc.Profile(c.Param("userId"))
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			response.BadRequest(c, "Could not find this profile")
			return
		}
		response.InternalError(c, err)
		return
	}
	posts, err := h.svc.WallPosts(friend.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": friend, "posts": posts})
}

// PATCH /users/:userId/friends?follow= / ?unfollow=
func (h *Handler) friends(c *gin.Context) {
	var dto FriendDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.NotFound(c, "Error processing this request. Please try again")
		return
	}
	userID := c.Param("userId")

	switch {
	case c.Query("unfollow") != "":
		friend, err := h.svc.Unfollow(userID, dto.ID)
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Success(c, gin.H{"user": friend})
	case c.Query("follow") != "":
		friend, err := h.svc.Follow(userID, dto.ID)
		if err != nil {
			h.fail(c, err)
			return
		}
		response.Success(c, gin.H{"user": friend})
	default:
		response.BadRequest(c, "Specify follow or unfollow")
	}
}

// GET /users/search?filter=
func (h *Handler) search(c *gin.Context) {
	filter := c.Query("filter")
	if filter == "" {
		response.NotFound(c, "Error searching..")
		return
	}
	users, err := h.svc.SearchByFirstName(filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": users})
}

// GET /users/:userId/photos
func (h *Handler) photos(c *gin.Context) {
	photos, err := h.svc.Photos(c.Param("userId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"photos": photos})
}

// PUT /users/:userId/photos - point profilePic at a stored photo.
func (h *Handler) setProfilePic(c *gin.Context) {
	var dto SetPhotoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.SetProfilePic(c.Param("userId"), dto.Photo)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// POST /users/:userId/photos - upload and resize a new profile photo.
func (h *Handler) uploadProfilePhoto(c *gin.Context) {
	h.upload(c, images.ProfileSize, false)
}

// PATCH /users/:userId/photos - upload and resize a new cover photo.
func (h *Handler) uploadCoverPhoto(c *gin.Context) {
	h.upload(c, images.CoverSize, true)
}

func (h *Handler) upload(c *gin.Context, size images.Size, asCover bool) {
	data, ok := middleware.ReadImageUpload(c, "image")
	if !ok {
		return
	}
	if data == nil {
		response.BadRequest(c, "No image was uploaded")
		return
	}

	filename := "user-" + uuid.NewString() + ".jpeg"
	if err := images.ResizeToFile(data, size, h.imagesDir, filename); err != nil {
		response.InternalError(c, err)
		return
	}

	user, err := h.svc.AddPhoto(middleware.CurrentUser(c).ID, filename, asCover)
	if err != nil {
		h.fail(c, err)
		return
	}
	photo := user.ProfilePic
	if asCover {
		photo = user.CoverPic
	}
	response.Success(c, gin.H{"photo": photo})
}

// PUT /users/photos/:pid - make a stored photo the cover picture.
func (h *Handler) setCoverPic(c *gin.Context) {
	user, err := h.svc.SetCoverPic(middleware.CurrentUser(c).ID, c.Param("pid"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// PATCH /users/photos/:pid - remove a photo and its file.
func (h *Handler) deletePhoto(c *gin.Context) {
	photo := c.Param("pid")
	if err := h.svc.RemovePhoto(middleware.CurrentUser(c).ID, photo); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := images.Remove(h.imagesDir, photo); err != nil {
		response.NotFound(c, "Could not delete that photo, try again")
		return
	}
	response.Success(c, gin.H{"message": "Photo has been deleted"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, errFriendNotFound):
		response.BadRequest(c, err.Error())
	case errors.Is(err, errAlreadyFriended):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
