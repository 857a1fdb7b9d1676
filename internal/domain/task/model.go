package task

import (
	"time"

	"github.com/google/uuid"
)

// Length bounds on Text. The store enforces them, the service only trims.
const (
	MinTextLen = 3
	MaxTextLen = 150
)

const dueDateLayout = "2006-01-02"

type Task struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	DueDate     string    `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
	User        uuid.UUID `json:"user"`
	Created     time.Time `json:"created"`
}

type CreateRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Text    string `json:"text,omitempty" doc:"Текст задачи, 3-150 символов" example:"water ferns"`
	Message string `json:"message,omitempty" doc:"Синоним text"`
	DueDate string `json:"dueDate,omitempty" doc:"Срок, по умолчанию сегодня" example:"2024-05-01"`
}

// Patch - частичное обновление, nil поля не меняются.
type Patch struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Text        *string `json:"text,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

func (p Patch) empty() bool {
	return p.Text == nil && p.DueDate == nil && p.IsCompleted == nil
}

type DoneRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Done bool `json:"done" doc:"Отметка о выполнении"`
}
