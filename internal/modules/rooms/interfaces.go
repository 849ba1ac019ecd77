package rooms

import (
	"context"

	"roomdesk/internal/domain"
)

// RoomStore is the persistence boundary for rooms.
type RoomStore interface {
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByNumber(ctx context.Context, number string) (*domain.Room, error)
	FindByLocation(ctx context.Context, building, number string) (*domain.Room, error)
	FindAll(ctx context.Context) ([]domain.Room, error)
	FindByCondition(ctx context.Context, condition domain.RoomCondition) ([]domain.Room, error)
	FindByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error)
	FindByMinCapacity(ctx context.Context, capacity int) ([]domain.Room, error)
	FindByBuilding(ctx context.Context, building string) ([]domain.Room, error)
	Write(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}
