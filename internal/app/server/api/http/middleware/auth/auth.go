package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/domain/errs"
	"junebug/internal/domain/user"
)

const LoginRequired = "Login to access the page"

// Identity - кто выполняет запрос. Кладется в контекст после проверки токена.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (user.User, error)
}

type Auth struct {
	users TokenResolver
	log   *slog.Logger
}

func New(users TokenResolver, log *slog.Logger) *Auth {
	return &Auth{
		users: users,
		log:   log.With("component", "auth_middleware"),
	}
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := credential(ctx.Header("Authorization"))
		if token == "" {
			a.reject(ctx, envelope.Unauthorized(LoginRequired))
			return
		}

		u, err := a.users.ResolveToken(ctx.Context(), token)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				a.log.Debug("unknown access token")
				a.reject(ctx, envelope.Unauthorized(LoginRequired))
				return
			}
			a.log.Error("resolve token", "error", err)
			a.reject(ctx, envelope.BadRequest(err.Error()))
			return
		}

		newCtx := WithIdentity(ctx.Context(), Identity{UserID: u.ID, Username: u.Username})
		next(huma.WithContext(ctx, newCtx))
	}
}

// Заголовок содержит сам токен, префикс Bearer допускается.
func credential(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}

func (a *Auth) reject(ctx huma.Context, e *envelope.Error) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(e.GetStatus())

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(e); err != nil {
		a.log.Error("json encode", "error", err)
	}
}

// Required достает Identity в хендлере. Отсутствие значит, что операция зарегистрирована без мидлвари.
func Required(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return Identity{}, envelope.Fail(http.StatusUnauthorized, LoginRequired)
	}
	return id, nil
}
