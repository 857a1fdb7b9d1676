// Package task adds the completion shortcut on top of the generic task routes.
package task

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/app/server/api/http/middleware/auth"
	"junebug/internal/domain/task"
)

type Completer interface {
	Complete(ctx context.Context, owner, id uuid.UUID, done bool) (task.Task, error)
}

type Handler struct {
	service    Completer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Completer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "task_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.doneOp(), h.done)
}

func (h *Handler) done(ctx context.Context, input *doneInput) (*envelope.Output[task.Task], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	taskID, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, envelope.BadRequest("invalid task id")
	}

	t, err := h.service.Complete(ctx, id.UserID, taskID, input.Body.Done)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(t), nil
}
