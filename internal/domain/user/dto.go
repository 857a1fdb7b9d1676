package user

import (
	"time"

	"github.com/google/uuid"
)

type SignUpRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name     string `json:"name,omitempty" doc:"Отображаемое имя" example:"June"`
	Username string `json:"username" doc:"Уникальное имя пользователя" example:"june"`
	Password string `json:"password" doc:"Пароль, не короче 5 символов" example:"hunter2x"`
}

type SignInRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Username string `json:"username" example:"june"`
	Password string `json:"password" example:"hunter2x"`
}

type Account struct {
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	AccessToken string    `json:"accessToken"`
}

type Profile struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Location string    `json:"location"`
	Created  time.Time `json:"created"`
}
