package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
)

// Pinger проверяет доступность хранилища. Может быть nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store      Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*envelope.Output[string], error) {
	h.log.Debug("health check request received")

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			h.log.Warn("storage is unavailable", "error", err)
			return nil, envelope.BadRequest(err.Error())
		}
	}

	return envelope.OK(StatusOK), nil
}
