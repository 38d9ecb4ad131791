package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) Rooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockInventory) Food(ctx context.Context) ([]domain.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodItem), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockCache) GetFood(ctx context.Context) ([]domain.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodItem), args.Error(1)
}

func (m *MockCache) SetFood(ctx context.Context, items []domain.FoodItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func TestCatalogService_RoomsCacheMiss(t *testing.T) {
	inventory := &MockInventory{}
	cache := &MockCache{}
	svc := NewCatalogService(inventory, cache)

	rooms := []domain.Room{{ID: 1, RoomType: "DELUXE", Available: true}}
	cache.On("GetRooms", mock.Anything).Return(nil, nil)
	inventory.On("Rooms", mock.Anything).Return(rooms, nil)
	cache.On("SetRooms", mock.Anything, rooms).Return(nil)

	got, err := svc.Rooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rooms, got)
	inventory.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_RoomsCacheHit(t *testing.T) {
	inventory := &MockInventory{}
	cache := &MockCache{}
	svc := NewCatalogService(inventory, cache)

	rooms := []domain.Room{{ID: 1, RoomType: "DELUXE"}}
	cache.On("GetRooms", mock.Anything).Return(rooms, nil)

	got, err := svc.Rooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rooms, got)
	inventory.AssertNotCalled(t, "Rooms", mock.Anything)
}

func TestCatalogService_RoomsInventoryError(t *testing.T) {
	inventory := &MockInventory{}
	svc := NewCatalogService(inventory, nil)

	inventory.On("Rooms", mock.Anything).Return(nil, errors.New("inventory down"))

	_, err := svc.Rooms(context.Background())
	assert.ErrorContains(t, err, "inventory down")
}

func TestCatalogService_RoomGroups(t *testing.T) {
	inventory := &MockInventory{}
	svc := NewCatalogService(inventory, nil)

	inventory.On("Rooms", mock.Anything).Return([]domain.Room{
		{ID: 5, RoomType: "DELUXE", PricePerNight: 2000, Available: true},
		{ID: 9, RoomType: "DELUXE", PricePerNight: 2000, Available: true},
		{ID: 3, RoomType: "SUITE", PricePerNight: 5000, Available: false},
	}, nil)

	groups, err := svc.RoomGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 9}, groups["DELUXE"].AvailableRoomIDs)
	assert.Equal(t, 0, groups["SUITE"].AvailableCount)
	assert.Equal(t, 1, groups["SUITE"].TotalCount)
}

func TestCatalogService_Cuisines(t *testing.T) {
	inventory := &MockInventory{}
	svc := NewCatalogService(inventory, nil)

	inventory.On("Food", mock.Anything).Return([]domain.FoodItem{
		{ID: 1, Cuisine: "italian"},
		{ID: 2, Cuisine: "indian"},
		{ID: 3, Cuisine: "italian"},
	}, nil)

	cuisines, err := svc.Cuisines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"italian", "indian"}, cuisines)
}
