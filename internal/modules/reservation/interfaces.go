package reservation

import (
	"context"

	"roomdesk/internal/domain"
)

type BookingRepository interface {
	Save(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Booking, error)
	FindByRoomAndDate(ctx context.Context, roomNumber, date string) ([]domain.Booking, error)
}

type RoomService interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Book(ctx context.Context, roomID string, snap domain.BookingSnapshot) bool
	CheckIn(ctx context.Context, roomID string) bool
}

type AccountStore interface {
	Find(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
