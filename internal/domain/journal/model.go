package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one message of the shared journal log. Entries carry no owner.
type Entry struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

type PostRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Message string `json:"message,omitempty" doc:"Новая запись, если пусто - только чтение журнала"`
}
