package journal

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/api/http/envelope"
	"junebug/internal/app/server/api/http/middleware/auth"
	"junebug/internal/domain/journal"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]journal.Entry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]journal.Entry), args.Error(1)
}

func (m *MockService) Post(ctx context.Context, message string) ([]journal.Entry, error) {
	args := m.Called(ctx, message)
	return args.Get(0).([]journal.Entry), args.Error(1)
}

func TestHandler(t *testing.T) {
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: uuid.New()})
	entries := []journal.Entry{{ID: uuid.New(), Message: "first light"}}

	svc := new(MockService)
	svc.On("List", mock.Anything).Return(entries, nil)
	svc.On("Post", mock.Anything, "first light").Return(entries, nil)
	svc.On("Post", mock.Anything, "boom").Return([]journal.Entry(nil), errors.New("db error: boom"))

	h := NewHandler(svc, slog.Default(), nil)

	out, err := h.list(ctx, &listInput{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.Equal(t, entries, out.Body.Response)

	input := &postInput{}
	input.Body.Message = "first light"
	out, err = h.post(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.Status)
	assert.Len(t, out.Body.Response, 1)

	input.Body.Message = "boom"
	_, err = h.post(ctx, input)
	var e *envelope.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadRequest, e.GetStatus())

	_, err = h.list(context.Background(), &listInput{})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusUnauthorized, e.GetStatus())
}
