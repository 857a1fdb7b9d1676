package journal

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/app/server/api/http/middleware/auth"
	"junebug/internal/domain/journal"
)

type Handler struct {
	service    journal.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service journal.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "journal_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.postOp(), h.post)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*envelope.Output[[]journal.Entry], error) {
	if _, err := auth.Required(ctx); err != nil {
		return nil, err
	}

	entries, err := h.service.List(ctx)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(entries), nil
}

// post возвращает весь журнал, даже если сообщение пустое.
func (h *Handler) post(ctx context.Context, input *postInput) (*envelope.Output[[]journal.Entry], error) {
	if _, err := auth.Required(ctx); err != nil {
		return nil, err
	}

	entries, err := h.service.Post(ctx, input.Body.Message)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(entries), nil
}
