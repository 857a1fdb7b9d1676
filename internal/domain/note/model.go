package note

import (
	"time"

	"github.com/google/uuid"
)

// Length bounds on Text, enforced by the store.
const (
	MinTextLen = 8
	MaxTextLen = 600
)

type Note struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
	User uuid.UUID `json:"user"`
}

type CreateRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Text string `json:"text,omitempty" doc:"Текст заметки, 8-600 символов"`
	Note string `json:"note,omitempty" doc:"Синоним text"`
}

type Patch struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Text string `json:"text" doc:"Новый текст заметки"`
}
