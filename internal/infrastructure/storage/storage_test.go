package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/app/server/config"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{Storage: config.StorageMemory}, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	tasks, err := s.Tasks().ListByOwner(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: "mongo"}, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown storage "mongo"`)
}
