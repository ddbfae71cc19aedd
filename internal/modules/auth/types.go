package auth

import "errors"

// SignupDTO is the registration payload.
type SignupDTO struct {
	FirstName       string `json:"firstName" binding:"required,min=2"`
	LastName        string `json:"lastName"  binding:"required,min=2"`
	Email           string `json:"email"     binding:"required,email"`
	Password        string `json:"password"  binding:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
	City            string `json:"city"      binding:"required"`
	State           string `json:"state"     binding:"required"`
	Zip             string `json:"zip"`
	BirthYear       int    `json:"birthYear"`
}

// LoginDTO is the credentials payload.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	errIncorrectCredentials = errors.New("Incorrect credentials. Please check your credentials and try again")
	errEmailTaken           = errors.New("A user with this email already exists")
	errNoCoordinates        = errors.New("Unable to retrieve those coordinates")
)
