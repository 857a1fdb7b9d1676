package task

import "junebug/internal/domain/task"

type doneInput struct {
	ID   string `path:"id" doc:"ID задачи"`
	Body task.DoneRequest
}
