package user

import "errors"

// FriendDTO carries the target user of a follow/unfollow request.
type FriendDTO struct {
	ID string `json:"id" binding:"required"`
}

// SetPhotoDTO names an already-uploaded photo.
type SetPhotoDTO struct {
	Photo string `json:"photo" binding:"required"`
}

// NearbyUser is the projection returned by the friend suggestion query.
type NearbyUser struct {
	ID         string  `json:"_id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	ProfilePic string  `json:"profilePic"`
	Distance   float64 `json:"distance"`
}

var (
	errUserNotFound    = errors.New("User could not be found. Please login.")
	errFriendNotFound  = errors.New("This friend no longer exists")
	errAlreadyFriended = errors.New("You are already friends with this person")
)
