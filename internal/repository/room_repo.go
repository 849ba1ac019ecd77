package repository

import (
	"context"
	"errors"
	"time"

	"roomdesk/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// roomModel flattens the room aggregate and its occupancy snapshot into one
// record, matching the display layer's expectations.
type roomModel struct {
	RoomID           string    `gorm:"column:room_id;primaryKey"`
	Capacity         int       `gorm:"column:capacity"`
	BuildingName     string    `gorm:"column:building_name;index"`
	RoomNumber       string    `gorm:"column:room_number;index"`
	Status           string    `gorm:"column:status"`
	Condition        string    `gorm:"column:condition"`
	BookingID        string    `gorm:"column:booking_id"`
	BookingUserID    string    `gorm:"column:booking_user_id"`
	BookingDate      string    `gorm:"column:booking_date"`
	BookingStartTime string    `gorm:"column:booking_start_time"`
	BookingEndTime   string    `gorm:"column:booking_end_time"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:       m.RoomID,
		Building: m.BuildingName,
		Number:   m.RoomNumber,
		Capacity: m.Capacity,
		Status:   domain.RoomStatus(m.Status),
		Context: domain.RoomContext{
			Condition: domain.RoomCondition(m.Condition),
			Snapshot: domain.BookingSnapshot{
				BookingID: m.BookingID,
				UserID:    m.BookingUserID,
				Date:      m.BookingDate,
				StartTime: m.BookingStartTime,
				EndTime:   m.BookingEndTime,
			},
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		RoomID:           r.ID,
		Capacity:         r.Capacity,
		BuildingName:     r.Building,
		RoomNumber:       r.Number,
		Status:           string(r.Status),
		Condition:        string(r.Context.Condition),
		BookingID:        r.Context.Snapshot.BookingID,
		BookingUserID:    r.Context.Snapshot.UserID,
		BookingDate:      r.Context.Snapshot.Date,
		BookingStartTime: r.Context.Snapshot.StartTime,
		BookingEndTime:   r.Context.Snapshot.EndTime,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("room_id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) FindByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("LOWER(room_number) = LOWER(?)", number).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) FindByLocation(ctx context.Context, building, number string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(building_name) = LOWER(?) AND LOWER(room_number) = LOWER(?)", building, number).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	if tx := r.db.WithContext(ctx).Order("building_name, room_number").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) FindByCondition(ctx context.Context, condition domain.RoomCondition) ([]domain.Room, error) {
	var ms []roomModel
	if tx := r.db.WithContext(ctx).Where("condition = ?", string(condition)).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) FindByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	var ms []roomModel
	if tx := r.db.WithContext(ctx).Where("status = ?", string(status)).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) FindByMinCapacity(ctx context.Context, capacity int) ([]domain.Room, error) {
	var ms []roomModel
	if tx := r.db.WithContext(ctx).Where("capacity >= ?", capacity).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) FindByBuilding(ctx context.Context, building string) ([]domain.Room, error) {
	var ms []roomModel
	if tx := r.db.WithContext(ctx).Where("LOWER(building_name) = LOWER(?)", building).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) Write(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	// Select all mutable columns so clearing the snapshot writes the empty
	// strings instead of being skipped as zero values.
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("room_id = ?", room.ID).
		Select("capacity", "building_name", "room_number", "status", "condition",
			"booking_id", "booking_user_id", "booking_date", "booking_start_time", "booking_end_time").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("room_id = ?", id).Delete(&roomModel{}).Error
}

func toDomainRooms(ms []roomModel) []domain.Room {
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out
}
