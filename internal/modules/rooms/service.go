package rooms

import (
	"context"
	"strings"

	"roomdesk/internal/domain"

	"github.com/google/uuid"
)

// Service owns every room state transition and the room queries. Transition
// operations return false for any expected failure: unknown room, illegal
// move, or a storage fault (which is logged, never propagated).
type Service struct {
	rooms   RoomStore
	loggerf func(format string, args ...interface{})
}

func NewService(rooms RoomStore, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{rooms: rooms, loggerf: loggerf}
}

// transition loads a room, applies the move and persists the result.
func (s *Service) transition(ctx context.Context, roomID, op string, apply func(*domain.Room) bool) bool {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		s.loggerf("level=warn msg=room lookup failed op=%s room_id=%s err=%v", op, roomID, err)
		return false
	}
	if !apply(room) {
		return false
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		s.loggerf("level=error msg=room write failed op=%s room_id=%s err=%v", op, roomID, err)
		return false
	}
	return true
}

func (s *Service) Book(ctx context.Context, roomID string, snap domain.BookingSnapshot) bool {
	return s.transition(ctx, roomID, "book", func(r *domain.Room) bool { return r.Book(snap) })
}

func (s *Service) CheckIn(ctx context.Context, roomID string) bool {
	return s.transition(ctx, roomID, "check_in", (*domain.Room).CheckIn)
}

func (s *Service) CheckOut(ctx context.Context, roomID string) bool {
	return s.transition(ctx, roomID, "check_out", (*domain.Room).CheckOut)
}

func (s *Service) CancelBooking(ctx context.Context, roomID string) bool {
	return s.transition(ctx, roomID, "cancel_booking", (*domain.Room).CancelBooking)
}

func (s *Service) TriggerNoShow(ctx context.Context, roomID string) bool {
	return s.transition(ctx, roomID, "trigger_no_show", (*domain.Room).TriggerNoShow)
}

func (s *Service) ExtendBooking(ctx context.Context, roomID string, hours int) bool {
	return s.transition(ctx, roomID, "extend_booking", func(r *domain.Room) bool { return r.ExtendBooking(hours) })
}

func (s *Service) ClearMaintenance(ctx context.Context, roomID string) bool {
	return s.transition(ctx, roomID, "clear_maintenance", (*domain.Room).ClearMaintenance)
}

// SetMaintenance withdraws a room. A Reserved or NoShow room is released
// first; an InUse room cannot be withdrawn until the occupant checks out.
func (s *Service) SetMaintenance(ctx context.Context, roomID string) bool {
	return s.transition(ctx, roomID, "set_maintenance", func(r *domain.Room) bool {
		if r.SetMaintenance() {
			return true
		}
		if !r.CancelBooking() {
			return false
		}
		return r.SetMaintenance()
	})
}

// SetStatus flips the administrative ENABLED/DISABLED flag. The occupancy
// condition is untouched; a disabled room simply stops accepting bookings.
func (s *Service) SetStatus(ctx context.Context, roomID string, status domain.RoomStatus) bool {
	if status != domain.RoomEnabled && status != domain.RoomDisabled {
		return false
	}
	return s.transition(ctx, roomID, "set_status", func(r *domain.Room) bool {
		r.Status = status
		return true
	})
}

// Create provisions a new room. The (building, number) location key is
// unique case-insensitively.
func (s *Service) Create(ctx context.Context, building, number string, capacity int) (*domain.Room, error) {
	building = strings.TrimSpace(building)
	number = strings.TrimSpace(number)
	if building == "" || number == "" || capacity <= 0 {
		return nil, ErrValidation
	}
	if existing, err := s.rooms.FindByLocation(ctx, building, number); err == nil && existing != nil {
		return nil, ErrLocationTaken
	}
	room := &domain.Room{
		ID:       uuid.NewString(),
		Building: building,
		Number:   number,
		Capacity: capacity,
		Status:   domain.RoomEnabled,
		Context:  domain.RoomContext{Condition: domain.ConditionAvailable},
	}
	if err := s.rooms.Write(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return s.rooms.FindByNumber(ctx, number)
}

func (s *Service) GetByLocation(ctx context.Context, building, number string) (*domain.Room, error) {
	return s.rooms.FindByLocation(ctx, building, number)
}

// List queries downgrade storage faults to empty results.

func (s *Service) ListAll(ctx context.Context) []domain.Room {
	out, err := s.rooms.FindAll(ctx)
	if err != nil {
		s.loggerf("level=warn msg=room list failed err=%v", err)
		return nil
	}
	return out
}

func (s *Service) ListByCondition(ctx context.Context, condition domain.RoomCondition) []domain.Room {
	out, err := s.rooms.FindByCondition(ctx, condition)
	if err != nil {
		s.loggerf("level=warn msg=room list by condition failed err=%v", err)
		return nil
	}
	return out
}

func (s *Service) ListByStatus(ctx context.Context, status domain.RoomStatus) []domain.Room {
	out, err := s.rooms.FindByStatus(ctx, status)
	if err != nil {
		s.loggerf("level=warn msg=room list by status failed err=%v", err)
		return nil
	}
	return out
}

func (s *Service) ListByMinCapacity(ctx context.Context, capacity int) []domain.Room {
	out, err := s.rooms.FindByMinCapacity(ctx, capacity)
	if err != nil {
		s.loggerf("level=warn msg=room list by capacity failed err=%v", err)
		return nil
	}
	return out
}

func (s *Service) ListByBuilding(ctx context.Context, building string) []domain.Room {
	out, err := s.rooms.FindByBuilding(ctx, building)
	if err != nil {
		s.loggerf("level=warn msg=room list by building failed err=%v", err)
		return nil
	}
	return out
}
