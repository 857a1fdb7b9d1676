package plant

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"junebug/internal/domain/catalog"
	"junebug/internal/domain/errs"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *Plant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]Plant, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Plant), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, owner, id uuid.UUID) (Plant, error) {
	args := m.Called(ctx, owner, id)
	return args.Get(0).(Plant), args.Error(1)
}

type MockSeedFinder struct {
	mock.Mock
}

func (m *MockSeedFinder) Seed(ctx context.Context, id int) (catalog.Seed, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Seed), args.Error(1)
}

func TestService_Create_SnapshotsSeed(t *testing.T) {
	repo := new(MockRepository)
	seeds := new(MockSeedFinder)
	owner := uuid.New()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	seed := catalog.Seed{ID: 1, Name: "Tomato", Type: "Vegetable", HarvestStart: "July", HarvestEnd: "October", DaysHarvest: 75}
	seeds.On("Seed", mock.Anything, 1).Return(seed, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Plant) bool {
		return p.User == owner && p.Name == "Tomato" && p.SeedID == 1
	})).Return(nil)

	s := NewService(repo, seeds, slog.Default())
	s.now = func() time.Time { return now }

	p, err := s.Create(context.Background(), owner, CreateRequest{SeedID: 1})
	require.NoError(t, err)
	assert.Equal(t, owner, p.User)
	assert.Equal(t, "Vegetable", p.Type)
	assert.Equal(t, 75, p.DaysHarvest)
	assert.Equal(t, now, p.Created)
	assert.NotEqual(t, uuid.Nil, p.ID)

	repo.AssertExpectations(t)
}

func TestService_Create_UnknownSeed(t *testing.T) {
	repo := new(MockRepository)
	seeds := new(MockSeedFinder)
	seeds.On("Seed", mock.Anything, 99).Return(catalog.Seed{}, catalog.ErrSeedNotFound)

	_, err := NewService(repo, seeds, slog.Default()).Create(context.Background(), uuid.New(), CreateRequest{SeedID: 99})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_List_Empty(t *testing.T) {
	repo := new(MockRepository)
	owner := uuid.New()
	repo.On("ListByOwner", mock.Anything, owner).Return(nil, nil)

	plants, err := NewService(repo, new(MockSeedFinder), slog.Default()).List(context.Background(), owner)
	require.NoError(t, err)
	assert.NotNil(t, plants)
	assert.Empty(t, plants)
}
