package catalog

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/domain/catalog"
)

type Handler struct {
	service    catalog.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service catalog.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "catalog_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.seedsOp(), h.seeds)
	huma.Register(api, h.seedOp(), h.seed)
	huma.Register(api, h.tipOp(), h.tip)
}

func (h *Handler) seeds(ctx context.Context, _ *seedsInput) (*envelope.Output[[]catalog.Seed], error) {
	seeds, err := h.service.Seeds(ctx)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(seeds), nil
}

func (h *Handler) seed(ctx context.Context, input *seedInput) (*envelope.Output[catalog.Seed], error) {
	s, err := h.service.Seed(ctx, input.SeedID)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(s), nil
}

func (h *Handler) tip(ctx context.Context, _ *tipInput) (*envelope.Output[catalog.Tip], error) {
	t, err := h.service.RandomTip(ctx)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(t), nil
}
