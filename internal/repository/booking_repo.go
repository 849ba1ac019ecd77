package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"roomdesk/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	BookingID        string    `gorm:"column:booking_id;primaryKey"`
	BookingUserID    string    `gorm:"column:booking_user_id;index"`
	RoomID           string    `gorm:"column:room_id"`
	BuildingName     string    `gorm:"column:building_name"`
	RoomNumber       string    `gorm:"column:room_number;index"`
	BookingDate      string    `gorm:"column:booking_date;index"`
	BookingStartTime string    `gorm:"column:booking_start_time"`
	BookingEndTime   string    `gorm:"column:booking_end_time"`
	Hours            int       `gorm:"column:hours"`
	Rate             float64   `gorm:"column:rate"`
	TotalCost        float64   `gorm:"column:total_cost"`
	Status           string    `gorm:"column:status"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.BookingID,
		AccountID:  m.BookingUserID,
		RoomID:     m.RoomID,
		Building:   m.BuildingName,
		RoomNumber: m.RoomNumber,
		Date:       m.BookingDate,
		StartTime:  m.BookingStartTime,
		EndTime:    m.BookingEndTime,
		Hours:      m.Hours,
		Rate:       m.Rate,
		TotalCost:  m.TotalCost,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		BookingID:        b.ID,
		BookingUserID:    b.AccountID,
		RoomID:           b.RoomID,
		BuildingName:     b.Building,
		RoomNumber:       b.RoomNumber,
		BookingDate:      b.Date,
		BookingStartTime: b.StartTime,
		BookingEndTime:   b.EndTime,
		Hours:            b.Hours,
		Rate:             b.Rate,
		TotalCost:        b.TotalCost,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// synthesizeBookingID builds the fallback id for records persisted without
// one: "B" plus the first 8 hex characters of the room id, uppercased, or
// of the account id when no room is attached.
func synthesizeBookingID(roomID, accountID string) string {
	src := roomID
	if src == "" {
		src = accountID
	}
	hex := strings.ReplaceAll(src, "-", "")
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return "B" + strings.ToUpper(hex)
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = synthesizeBookingID(b.RoomID, b.AccountID)
	}
	m := toBookingModel(b)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("booking_id = ?", b.ID).Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("booking_id = ?", id).Delete(&bookingModel{}).Error
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*").
		Joins("JOIN accounts ON accounts.id = bookings.booking_user_id").
		Where("LOWER(accounts.email) = LOWER(?)", strings.TrimSpace(email)).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindByRoomAndDate(ctx context.Context, roomNumber, date string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(room_number) = LOWER(?) AND booking_date = ?", roomNumber, date).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	if tx := r.db.WithContext(ctx).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
