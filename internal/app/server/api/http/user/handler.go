package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/app/server/api/http/middleware/auth"
	"junebug/internal/domain/user"
)

type Handler struct {
	service       user.Servicer
	log           *slog.Logger
	middleware    huma.Middlewares
	authenticated huma.Middlewares
}

// NewHandler: middleware - для открытых операций, authenticated - для /me.
func NewHandler(service user.Servicer, log *slog.Logger, middleware, authenticated huma.Middlewares) *Handler {
	return &Handler{
		service:       service,
		log:           log.With("component", "user_handler"),
		middleware:    middleware,
		authenticated: authenticated,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signUpOp(), h.signUp)
	huma.Register(api, h.signInOp(), h.signIn)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.updateMeOp(), h.updateMe)
}

func (h *Handler) signUp(ctx context.Context, input *signUpInput) (*envelope.Output[user.Account], error) {
	u, err := h.service.Register(ctx, input.Body)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.Created(u.Account()), nil
}

func (h *Handler) signIn(ctx context.Context, input *signInInput) (*envelope.Output[user.Account], error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		h.log.Debug("sign in rejected", "username", input.Body.Username)
		return nil, envelope.FromError(err)
	}
	return envelope.OK(u.Account()), nil
}

func (h *Handler) me(ctx context.Context, _ *meInput) (*envelope.Output[user.Profile], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Profile(ctx, id.UserID)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(u.Profile()), nil
}

func (h *Handler) updateMe(ctx context.Context, input *updateMeInput) (*envelope.Output[user.Profile], error) {
	id, err := auth.Required(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.service.UpdateProfile(ctx, id.UserID, input.Body)
	if err != nil {
		return nil, envelope.FromError(err)
	}
	return envelope.OK(u.Profile()), nil
}
