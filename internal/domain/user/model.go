package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string // bcrypt
	AccessToken  string
	Name         string
	Location     string
	CreatedAt    time.Time
}

// ProfilePatch - частичное обновление профиля, nil означает "не менять".
type ProfilePatch struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name     *string `json:"name,omitempty" doc:"Отображаемое имя"`
	Location *string `json:"location,omitempty" doc:"Местоположение"`
}

// Account is what sign-up and sign-in hand back to the client.
func (u User) Account() Account {
	return Account{
		UserID:      u.ID,
		Name:        u.Name,
		Username:    u.Username,
		AccessToken: u.AccessToken,
	}
}

func (u User) Profile() Profile {
	return Profile{
		UserID:   u.ID,
		Name:     u.Name,
		Username: u.Username,
		Location: u.Location,
		Created:  u.CreatedAt,
	}
}
