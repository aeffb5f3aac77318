package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"sennight_server/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// UserProfileService handles registration, login and profile edits
// over the users collection.
type UserProfileService struct {
	Store *FileStore
}

// defaultLookingFor is assigned when registration omits a preference.
func defaultLookingFor() models.StringList {
	return models.StringList{"female", "male", "non-binary"}
}

// Register creates a new account. Email comparison is
// case-insensitive; the duplicate check and the insert run under the
// users lock so two concurrent registrations cannot both win.
func (s *UserProfileService) Register(ctx context.Context, email, password, name, gender string, lookingFor models.StringList) (models.User, error) {
	if email == "" || password == "" || name == "" {
		return models.User{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, err
	}

	if gender == "" {
		gender = "unspecified"
	}
	if len(lookingFor) == 0 {
		lookingFor = defaultLookingFor()
	}

	user := models.User{
		ID:         uuid.NewString(),
		Email:      email,
		PassHash:   string(hash),
		Name:       name,
		Gender:     gender,
		LookingFor: lookingFor,
		Interests:  []string{},
		Photos:     []string{},
		CreatedAt:  time.Now().UTC(),
	}

	err = s.Store.WithLock(models.UsersCollection, func() error {
		users, err := loadUsers(s.Store)
		if err != nil {
			return err
		}
		for _, u := range users {
			if strings.EqualFold(u.Email, email) {
				return ErrEmailExists
			}
		}
		users = append(users, user)
		return s.Store.Replace(models.UsersCollection, users)
	})
	if err != nil {
		return models.User{}, err
	}

	log.Printf("Registered user %s (%s)", user.ID, user.Email)
	return user, nil
}

// Authenticate checks email and password, returning the same
// bad_credentials error whether the email is unknown or the password
// is wrong.
func (s *UserProfileService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	users, err := loadUsers(s.Store)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
				return models.User{}, ErrBadCredentials
			}
			return u, nil
		}
	}
	return models.User{}, ErrBadCredentials
}

// GetProfile returns the caller's own record.
func (s *UserProfileService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	users, err := loadUsers(s.Store)
	if err != nil {
		return models.User{}, err
	}
	if u := findUserByID(users, userID); u != nil {
		return *u, nil
	}
	return models.User{}, ErrProfileNotFound
}

// UpdateProfile applies an allow-listed subset of fields to the
// caller's record. Each updatable field has its own typed setter;
// anything outside the list is silently ignored.
func (s *UserProfileService) UpdateProfile(ctx context.Context, userID string, fields map[string]json.RawMessage) (models.User, error) {
	var updated models.User

	err := s.Store.WithLock(models.UsersCollection, func() error {
		users, err := loadUsers(s.Store)
		if err != nil {
			return err
		}
		u := findUserByID(users, userID)
		if u == nil {
			return ErrProfileNotFound
		}

		for key, raw := range fields {
			if err := applyProfileField(u, key, raw); err != nil {
				return ErrMissingFields
			}
		}

		updated = *u
		return s.Store.Replace(models.UsersCollection, users)
	})
	if err != nil {
		return models.User{}, err
	}

	log.Printf("Updated profile for user %s", userID)
	return updated, nil
}

// applyProfileField is the enumerated allow-list of updatable fields.
// Unknown keys are a no-op; a known key with a payload of the wrong
// type is an error.
func applyProfileField(u *models.User, key string, raw json.RawMessage) error {
	switch key {
	case "name":
		return json.Unmarshal(raw, &u.Name)
	case "age":
		return json.Unmarshal(raw, &u.Age)
	case "city":
		return json.Unmarshal(raw, &u.City)
	case "bio":
		return json.Unmarshal(raw, &u.Bio)
	case "interests":
		return json.Unmarshal(raw, &u.Interests)
	case "photos":
		return json.Unmarshal(raw, &u.Photos)
	case "gender":
		return json.Unmarshal(raw, &u.Gender)
	case "lookingFor":
		return json.Unmarshal(raw, &u.LookingFor)
	default:
		return nil
	}
}
