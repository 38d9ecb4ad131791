package catalog

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

type CatalogUseCase interface {
	Rooms(ctx context.Context) ([]domain.Room, error)
	RoomGroups(ctx context.Context) (map[string]domain.RoomTypeGroup, error)
	Food(ctx context.Context) ([]domain.FoodItem, error)
	Cuisines(ctx context.Context) ([]string, error)
}

// InventoryReader is the external inventory API.
type InventoryReader interface {
	Rooms(ctx context.Context) ([]domain.Room, error)
	Food(ctx context.Context) ([]domain.FoodItem, error)
}

type Cache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	GetFood(ctx context.Context) ([]domain.FoodItem, error)
	SetFood(ctx context.Context, items []domain.FoodItem) error
}

type CatalogService struct {
	inventory InventoryReader
	cache     Cache
}

func NewCatalogService(inventory InventoryReader, cache Cache) *CatalogService {
	return &CatalogService{inventory: inventory, cache: cache}
}

func (s *CatalogService) Rooms(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.inventory.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetRooms(ctx, rooms)
	}
	return rooms, nil
}

// RoomGroups is always derived from the current room list, never cached on
// its own, so it can't go stale relative to the list.
func (s *CatalogService) RoomGroups(ctx context.Context) (map[string]domain.RoomTypeGroup, error) {
	rooms, err := s.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupRoomsByType(rooms), nil
}

func (s *CatalogService) Food(ctx context.Context) ([]domain.FoodItem, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFood(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	items, err := s.inventory.Food(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFood(ctx, items)
	}
	return items, nil
}

func (s *CatalogService) Cuisines(ctx context.Context) ([]string, error) {
	items, err := s.Food(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Cuisines(items), nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
