package booking

import (
	"context"

	"roomdesk/internal/domain"
)

// BookingRepository is the persistence boundary for booking records.
type BookingRepository interface {
	Save(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Booking, error)
	FindByRoomAndDate(ctx context.Context, roomNumber, date string) ([]domain.Booking, error)
	FindAll(ctx context.Context) ([]domain.Booking, error)
}

// RoomService is the slice of the room transition API the commands drive.
type RoomService interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	Book(ctx context.Context, roomID string, snap domain.BookingSnapshot) bool
	CancelBooking(ctx context.Context, roomID string) bool
	ExtendBooking(ctx context.Context, roomID string, hours int) bool
}

// PaymentService charges and refunds against the account on file.
type PaymentService interface {
	Charge(amount float64) bool
	Refund(amount float64) bool
}
