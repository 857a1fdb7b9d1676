package journal

import "junebug/internal/domain/journal"

type listInput struct{}

type postInput struct {
	Body journal.PostRequest `required:"false"`
}
