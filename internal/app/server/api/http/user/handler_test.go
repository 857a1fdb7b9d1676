package user

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/app/server/api/http/middleware/auth"
	"junebug/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req user.SignUpRequest) (user.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) ResolveToken(ctx context.Context, token string) (user.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Profile(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) UpdateProfile(ctx context.Context, id uuid.UUID, patch user.ProfilePatch) (user.User, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(user.User), args.Error(1)
}

func newHandler(svc user.Servicer) *Handler {
	return NewHandler(svc, slog.Default(), nil, nil)
}

func requireEnvelopeError(t *testing.T, err error, status int, text string) {
	t.Helper()
	var e *envelope.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, status, e.GetStatus())
	assert.Equal(t, text, e.Response)
}

func TestHandler_SignUp(t *testing.T) {
	june := user.User{ID: uuid.New(), Username: "june", Name: "June", AccessToken: "T"}

	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		req := user.SignUpRequest{Name: "June", Username: "june", Password: "hunter2x"}
		svc.On("Register", mock.Anything, req).Return(june, nil)

		out, err := newHandler(svc).signUp(context.Background(), &signUpInput{Body: req})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, out.Status)
		assert.Equal(t, user.Account{UserID: june.ID, Name: "June", Username: "june", AccessToken: "T"}, out.Body.Response)
	})

	t.Run("short password", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, mock.Anything).Return(user.User{}, user.ErrPasswordTooShort)

		_, err := newHandler(svc).signUp(context.Background(), &signUpInput{})
		requireEnvelopeError(t, err, http.StatusBadRequest, "password must be at least 5 characters long")
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(user.User{}, errors.Join(errors.New("create user"), user.ErrUsernameTaken))

		_, err := newHandler(svc).signUp(context.Background(), &signUpInput{})
		var e *envelope.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, http.StatusBadRequest, e.GetStatus())
	})
}

func TestHandler_SignIn(t *testing.T) {
	june := user.User{ID: uuid.New(), Username: "june", AccessToken: "T"}

	svc := new(MockService)
	svc.On("Authenticate", mock.Anything, "june", "hunter2x").Return(june, nil)
	svc.On("Authenticate", mock.Anything, "june", "wrong").Return(user.User{}, user.ErrInvalidCredentials)

	h := newHandler(svc)

	out, err := h.signIn(context.Background(), &signInInput{Body: user.SignInRequest{Username: "june", Password: "hunter2x"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.Equal(t, "T", out.Body.Response.AccessToken)

	_, err = h.signIn(context.Background(), &signInInput{Body: user.SignInRequest{Username: "june", Password: "wrong"}})
	requireEnvelopeError(t, err, http.StatusNotFound, "User or password does not match")
}

func TestHandler_Me(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: id, Username: "june"})

	svc := new(MockService)
	svc.On("Profile", mock.Anything, id).Return(user.User{ID: id, Username: "june", CreatedAt: created}, nil)

	location := "Stockholm"
	svc.On("UpdateProfile", mock.Anything, id, user.ProfilePatch{Location: &location}).
		Return(user.User{ID: id, Username: "june", Location: location, CreatedAt: created}, nil)

	h := newHandler(svc)

	out, err := h.me(ctx, &meInput{})
	require.NoError(t, err)
	assert.Equal(t, user.Profile{UserID: id, Username: "june", Created: created}, out.Body.Response)

	updated, err := h.updateMe(ctx, &updateMeInput{Body: user.ProfilePatch{Location: &location}})
	require.NoError(t, err)
	assert.Equal(t, "Stockholm", updated.Body.Response.Location)

	_, err = h.me(context.Background(), &meInput{})
	requireEnvelopeError(t, err, http.StatusUnauthorized, auth.LoginRequired)
}
