package user

import (
	"errors"
	"math"
	"sort"

	"github.com/linkup-social/core/internal/models"
	"gorm.io/gorm"
)

const (
	// suggestion radius in meters and the meters-to-miles multiplier the
	// client displays distances with
	nearbyMaxDistanceMeters = 1_000_000
	metersToMiles           = 0.0006213712
	nearbyLimit             = 10

	earthRadiusMeters = 6_371_000
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Profile loads a user with followers and following populated.
func (s *Service) Profile(id string) (*models.UserModel, error) {
	var u models.UserModel
	err := s.db.
		Preload("Followers", models.SelectPublicUser).
		Preload("Following", models.SelectPublicUser).
		First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// WallPosts loads the posts on a user's wall, comments included.
func (s *Service) WallPosts(userID string) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.
		Preload("Comments").
		Preload("ToUser", models.SelectPublicUser).
		Preload("FromUser", models.SelectPublicUser).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// Follow adds friendID to userID's following list.
func (s *Service) Follow(userID, friendID string) (*models.UserModel, error) {
	var friend models.UserModel
	if err := s.db.First(&friend, "id = ?", friendID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errFriendNotFound
		}
		return nil, err
	}

	var count int64
	s.db.Table("user_following").
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count)
	if count > 0 {
		return nil, errAlreadyFriended
	}

	u := models.UserModel{Base: models.Base{ID: userID}}
	if err := s.db.Model(&u).Association("Following").Append(&friend); err != nil {
		return nil, err
	}
	return &friend, nil
}

// Unfollow removes friendID from userID's following list.
func (s *Service) Unfollow(userID, friendID string) (*models.UserModel, error) {
	var friend models.UserModel
	if err := s.db.First(&friend, "id = ?", friendID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errFriendNotFound
		}
		return nil, err
	}

	u := models.UserModel{Base: models.Base{ID: userID}}
	if err := s.db.Model(&u).Association("Following").Delete(&friend); err != nil {
		return nil, err
	}
	return &friend, nil
}

// Nearby returns up to 10 users within 1000 km of the given point, closest
// first, with distances in miles.
func (s *Service) Nearby(lng, lat float64) ([]NearbyUser, error) {
	var users []models.UserModel
	if err := s.db.Select("id, first_name, last_name, profile_pic, location_lng, location_lat").
		Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]NearbyUser, 0, nearbyLimit)
	for _, u := range users {
		if u.Location.Lng == 0 && u.Location.Lat == 0 {
			continue
		}
		meters := haversineMeters(lat, lng, u.Location.Lat, u.Location.Lng)
		if meters > nearbyMaxDistanceMeters {
			continue
		}
		out = append(out, NearbyUser{
			ID:         u.ID,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			ProfilePic: u.ProfilePic,
			Distance:   meters * metersToMiles,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > nearbyLimit {
		out = out[:nearbyLimit]
	}
	return out, nil
}

// SearchByFirstName finds users whose first name matches the filter exactly.
func (s *Service) SearchByFirstName(filter string) ([]models.UserModel, error) {
	var users []models.UserModel
	err := s.db.Select(models.PublicUserFields).
		Where("first_name = ?", filter).
		Find(&users).Error
	return users, err
}

// Photos returns the stored photo filenames of a user.
func (s *Service) Photos(userID string) ([]string, error) {
	var u models.UserModel
	if err := s.db.Select("id, photos").First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return u.Photos, nil
}

// SetProfilePic points profilePic at an already-stored photo.
func (s *Service) SetProfilePic(userID, photo string) (*models.UserModel, error) {
	return s.updatePics(userID, map[string]interface{}{"profile_pic": photo})
}

// SetCoverPic points coverPic at an already-stored photo.
func (s *Service) SetCoverPic(userID, photo string) (*models.UserModel, error) {
	return s.updatePics(userID, map[string]interface{}{"cover_pic": photo})
}

func (s *Service) updatePics(userID string, updates map[string]interface{}) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&u).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// AddPhoto records a freshly stored image, also making it the profile or
// cover picture.
func (s *Service) AddPhoto(userID, filename string, asCover bool) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}

	u.Photos = append(u.Photos, filename)
	// update through the struct so the json serializer on Photos applies
	updates := models.UserModel{Photos: u.Photos}
	cols := []string{"photos"}
	if asCover {
		u.CoverPic = filename
		updates.CoverPic = filename
		cols = append(cols, "cover_pic")
	} else {
		u.ProfilePic = filename
		updates.ProfilePic = filename
		cols = append(cols, "profile_pic")
	}
	if err := s.db.Model(&u).Select(cols).Updates(&updates).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// RemovePhoto drops a photo filename from the user's list.
func (s *Service) RemovePhoto(userID, filename string) error {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		return err
	}

	kept := make([]string, 0, len(u.Photos))
	for _, p := range u.Photos {
		if p != filename {
			kept = append(kept, p)
		}
	}
	return s.db.Model(&u).Select("photos").Updates(&models.UserModel{Photos: kept}).Error
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
