// Package resource registers the CRUD routes shared by every user-owned entity.
package resource

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/app/server/api/http/middleware/auth"
)

type Servicer[T, C any] interface {
	Create(ctx context.Context, owner uuid.UUID, req C) (T, error)
	List(ctx context.Context, owner uuid.UUID) ([]T, error)
	Delete(ctx context.Context, owner, id uuid.UUID) (T, error)
}

// Updater is optional, entities without it get no PATCH route.
type Updater[T, P any] interface {
	Update(ctx context.Context, owner, id uuid.UUID, patch P) (T, error)
}

// Names задает имена сущности в путях, тегах и сообщениях.
type Names struct {
	Singular string // task
	Plural   string // tasks
}

type Handler[T, C, P any] struct {
	names      Names
	service    Servicer[T, C]
	updater    Updater[T, P]
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler[T, C, P any](
	names Names,
	service Servicer[T, C],
	updater Updater[T, P],
	log *slog.Logger,
	middleware huma.Middlewares,
) *Handler[T, C, P] {
	return &Handler[T, C, P]{
		names:      names,
		service:    service,
		updater:    updater,
		log:        log.With("component", names.Plural+"_handler"),
		middleware: middleware,
	}
}

func (h *Handler[T, C, P]) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	if h.updater != nil {
		huma.Register(api, h.updateOp(), h.update)
	}
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler[T, C, P]) create(ctx context.Context, input *createInput[C]) (*envelope.Output[T], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	item, err := h.service.Create(ctx, id.UserID, input.Body)
	if err != nil {
		h.log.Debug("create failed", "user_id", id.UserID, "error", err)
		return nil, envelope.FromError(err)
	}
	return envelope.Created(item), nil
}

func (h *Handler[T, C, P]) list(ctx context.Context, input *listInput) (*envelope.Output[[]T], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	owner, err := uuid.Parse(input.UserID)
	if err != nil {
		return nil, envelope.BadRequest("invalid user id")
	}
	// чужие списки не отдаем, как будто их нет
	if owner != id.UserID {
		return nil, envelope.NotFound("Could not find " + h.names.Plural)
	}

	items, err := h.service.List(ctx, owner)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(items), nil
}

func (h *Handler[T, C, P]) update(ctx context.Context, input *updateInput[P]) (*envelope.Output[T], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	itemID, err := h.parseID(input.ID)
	if err != nil {
		return nil, err
	}

	item, err := h.updater.Update(ctx, id.UserID, itemID, input.Body)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(item), nil
}

func (h *Handler[T, C, P]) delete(ctx context.Context, input *itemInput) (*envelope.Output[T], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	itemID, err := h.parseID(input.ID)
	if err != nil {
		return nil, err
	}

	item, err := h.service.Delete(ctx, id.UserID, itemID)
	if err != nil {
		return nil, envelope.FromError(err)
	}

	h.log.Debug("deleted", "id", itemID, "user_id", id.UserID)
	return envelope.OK(item), nil
}

func (h *Handler[T, C, P]) parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, envelope.BadRequest("invalid " + h.names.Singular + " id")
	}
	return id, nil
}
