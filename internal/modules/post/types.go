package post

import "errors"

// CreatePostDTO is the multipart form payload of a new post.
type CreatePostDTO struct {
	To   string `form:"to"   binding:"required"`
	From string `form:"from" binding:"required"`
	Desc string `form:"desc" binding:"max=500"`
}

var (
	errPostNotFound = errors.New("There is no post by that Id")
	errAlreadyLiked = errors.New("You already have liked this post")
)
