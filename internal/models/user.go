package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

const (
	DefaultProfilePic  = "default.jpg"
	DefaultCatchPhrase = "Say Something Clever"
)

// UserModel represents a member of the network.
type UserModel struct {
	Base
	FirstName   string       `json:"firstName"   gorm:"not null"`
	LastName    string       `json:"lastName"    gorm:"not null"`
	Email       string       `json:"email"       gorm:"uniqueIndex;not null"`
	Password    string       `json:"-"           gorm:"not null"`
	ProfilePic  string       `json:"profilePic"`
	CoverPic    string       `json:"coverPic"`
	Photos      []string     `json:"photos"      gorm:"type:longtext;serializer:json"`
	Followers   []*UserModel `json:"followers,omitempty" gorm:"many2many:user_followers;joinForeignKey:UserID;joinReferences:FollowerID"`
	Following   []*UserModel `json:"following,omitempty" gorm:"many2many:user_following;joinForeignKey:UserID;joinReferences:FriendID"`
	Location    Location     `json:"location"    gorm:"embedded;embeddedPrefix:location_"`
	BirthYear   int          `json:"birthYear,omitempty"`
	CatchPhrase string       `json:"catchPhrase" gorm:"type:varchar(150)"`
}

func (UserModel) TableName() string { return "users" }

// PublicUserFields limits populated user refs to presentation columns, the
// equivalent of the restricted projections the old Mongoose populate calls used.
var PublicUserFields = []string{"id", "first_name", "last_name", "profile_pic", "catch_phrase", "created_at", "updated_at"}

// SelectPublicUser is a Preload scope applying PublicUserFields.
func SelectPublicUser(db *gorm.DB) *gorm.DB {
	return db.Select(PublicUserFields)
}

// Username is the display name used in presence events.
func (u *UserModel) Username() string {
	return u.FirstName + " " + u.LastName
}

// Location is a geocoded point plus the address parts it came from.
type Location struct {
	Lng   float64 `json:"-"`
	Lat   float64 `json:"-"`
	City  string  `json:"city"`
	State string  `json:"state"`
}

// MarshalJSON renders the GeoJSON-ish shape the client consumes:
// {"type":"Point","coordinates":[lng,lat],"city":...,"state":...}.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
		City        string     `json:"city"`
		State       string     `json:"state"`
	}{
		Type:        "Point",
		Coordinates: [2]float64{l.Lng, l.Lat},
		City:        l.City,
		State:       l.State,
	})
}

// UnmarshalJSON accepts the same wire shape back.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw struct {
		Coordinates []float64 `json:"coordinates"`
		City        string    `json:"city"`
		State       string    `json:"state"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Coordinates) >= 2 {
		l.Lng, l.Lat = raw.Coordinates[0], raw.Coordinates[1]
	}
	l.City, l.State = raw.City, raw.State
	return nil
}
