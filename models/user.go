package models

import (
	"encoding/json"
	"time"
)

// StringList unmarshals from either a JSON array of strings or a bare
// string. Older records persisted lookingFor as a scalar; a scalar is
// treated as a singleton list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = StringList{one}
	return nil
}

// Contains reports whether v is a member of the list.
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}

// User is the stored account record, including the credential hash.
type User struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	PassHash   string     `json:"passHash"`
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	LookingFor StringList `json:"lookingFor"`
	Age        *int       `json:"age"`
	City       string     `json:"city"`
	Bio        string     `json:"bio"`
	Interests  []string   `json:"interests"`
	Photos     []string   `json:"photos"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// PublicUser is the projection of a User that is safe to return to
// clients: everything except the credential hash.
type PublicUser struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	LookingFor StringList `json:"lookingFor"`
	Age        *int       `json:"age"`
	City       string     `json:"city"`
	Bio        string     `json:"bio"`
	Interests  []string   `json:"interests"`
	Photos     []string   `json:"photos"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Public strips the credential hash from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Gender:     u.Gender,
		LookingFor: u.LookingFor,
		Age:        u.Age,
		City:       u.City,
		Bio:        u.Bio,
		Interests:  u.Interests,
		Photos:     u.Photos,
		CreatedAt:  u.CreatedAt,
	}
}
