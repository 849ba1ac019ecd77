package reservation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"roomdesk/internal/domain"
	"roomdesk/internal/modules/booking"
	"roomdesk/internal/modules/pricing"
	"roomdesk/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Service is the reservation façade: pricing lookup, booking creation with
// conflict checks, lookup through an in-memory cache, and check-in.
//
// Creation with a room attached reports failures as errors; check-in and
// update keep the boolean style of the transition APIs.
type Service struct {
	bookings  BookingRepository
	rooms     RoomService
	accounts  AccountStore
	pricing   *pricing.Factory
	clock     timeutil.Clock
	observers *booking.ObserverList
	loggerf   func(format string, args ...interface{})

	mu    sync.RWMutex
	cache map[string]*domain.Booking
}

func NewService(
	bookings BookingRepository,
	rooms RoomService,
	accounts AccountStore,
	factory *pricing.Factory,
	clock timeutil.Clock,
	observers *booking.ObserverList,
	loggerf func(format string, args ...interface{}),
) *Service {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if observers == nil {
		observers = booking.NewObserverList()
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings:  bookings,
		rooms:     rooms,
		accounts:  accounts,
		pricing:   factory,
		clock:     clock,
		observers: observers,
		loggerf:   loggerf,
		cache:     map[string]*domain.Booking{},
	}
}

// CalculateHourlyRate delegates to the pricing factory.
func (s *Service) CalculateHourlyRate(account *domain.Account) float64 {
	return s.pricing.PolicyFor(account).HourlyRate()
}

func newBookingID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "B" + strings.ToUpper(hex[:8])
}

// CreateBooking records a ledger-only booking with no room attached.
func (s *Service) CreateBooking(ctx context.Context, account *domain.Account, hours int, rate float64) (*domain.Booking, error) {
	if account == nil || hours <= 0 || rate < 0 {
		return nil, ErrValidation
	}
	b := &domain.Booking{
		ID:        newBookingID(),
		AccountID: account.ID,
		Hours:     hours,
		Rate:      rate,
		Status:    domain.BookingReserved,
	}
	b.RecalculateCost()
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	s.cachePut(b)
	s.observers.NotifyCreated(b)
	return b, nil
}

// CreateRoomBooking validates the room, checks for time conflicts, persists
// the booking and then reserves the room. The booking record is written
// first; if the room reservation fails the record is removed again and the
// failure surfaces as an error.
func (s *Service) CreateRoomBooking(ctx context.Context, account *domain.Account, hours int, rate float64, roomNumber, date, start, end string) (*domain.Booking, error) {
	if account == nil || hours <= 0 || rate < 0 {
		return nil, ErrValidation
	}
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrRoomNumberRequired
	}
	room, err := s.rooms.GetByNumber(ctx, roomNumber)
	if err != nil || room == nil {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, roomNumber)
	}
	if !room.Enabled() {
		return nil, fmt.Errorf("%w: %q", ErrRoomDisabled, roomNumber)
	}
	if s.hasConflict(ctx, roomNumber, date, start, end) {
		return nil, fmt.Errorf("%w: room %q on %s %s-%s", ErrTimeConflict, roomNumber, date, start, end)
	}

	b := &domain.Booking{
		ID:         newBookingID(),
		AccountID:  account.ID,
		RoomID:     room.ID,
		Building:   room.Building,
		RoomNumber: room.Number,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Hours:      hours,
		Rate:       rate,
		Status:     domain.BookingReserved,
	}
	b.RecalculateCost()

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	if !s.rooms.Book(ctx, room.ID, domain.BookingSnapshot{
		BookingID: b.ID,
		UserID:    b.AccountID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}) {
		if derr := s.bookings.Delete(ctx, b.ID); derr != nil {
			s.loggerf("level=error msg=orphaned booking after room reserve failure booking_id=%s err=%v", b.ID, derr)
		}
		return nil, fmt.Errorf("%w: %q", ErrRoomUnavailable, roomNumber)
	}

	s.cachePut(b)
	s.observers.NotifyCreated(b)
	return b, nil
}

func (s *Service) hasConflict(ctx context.Context, roomNumber, date, start, end string) bool {
	existing, err := s.bookings.FindByRoomAndDate(ctx, roomNumber, date)
	if err != nil {
		s.loggerf("level=warn msg=conflict scan failed room=%s date=%s err=%v", roomNumber, date, err)
		return true
	}
	for i := range existing {
		if existing[i].ConflictsWith(roomNumber, date, start, end) {
			return true
		}
	}
	return false
}

// FindBooking checks the in-memory cache, then the repository. Storage
// faults are downgraded to a miss.
func (s *Service) FindBooking(ctx context.Context, id string) *domain.Booking {
	s.mu.RLock()
	cached, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return cached
	}
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil || b == nil {
		if err != nil {
			s.loggerf("level=warn msg=booking lookup failed booking_id=%s err=%v", id, err)
		}
		return nil
	}
	s.cachePut(b)
	return b
}

// UpdateBooking persists an externally mutated booking and refreshes the
// cache.
func (s *Service) UpdateBooking(ctx context.Context, b *domain.Booking) bool {
	if b == nil || b.ID == "" {
		return false
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		s.loggerf("level=error msg=booking update failed booking_id=%s err=%v", b.ID, err)
		return false
	}
	s.cachePut(b)
	s.observers.NotifyUpdated(b)
	return true
}

// CheckIn validates the booking against the claimed account email
// (case-insensitive) and drives both the booking and, when a room is
// attached, the room to InUse.
func (s *Service) CheckIn(ctx context.Context, bookingID, email string) bool {
	b := s.FindBooking(ctx, bookingID)
	if b == nil {
		return false
	}
	account, err := s.accounts.Find(ctx, b.AccountID)
	if err != nil || account == nil {
		if err != nil {
			s.loggerf("level=warn msg=account lookup failed account_id=%s err=%v", b.AccountID, err)
		}
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(email), account.Email) {
		return false
	}
	if b.Status != domain.BookingReserved {
		return false
	}

	updated := *b
	updated.Status = domain.BookingInUse
	if err := s.bookings.Update(ctx, &updated); err != nil {
		s.loggerf("level=error msg=check-in write failed booking_id=%s err=%v", b.ID, err)
		return false
	}
	s.cachePut(&updated)

	if updated.RoomNumber != "" {
		room, err := s.rooms.GetByNumber(ctx, updated.RoomNumber)
		if err != nil {
			s.loggerf("level=error msg=room lookup failed on check-in booking_id=%s room=%s err=%v", b.ID, updated.RoomNumber, err)
		} else if !s.rooms.CheckIn(ctx, room.ID) {
			s.loggerf("level=error msg=room check-in rejected booking_id=%s room_id=%s", b.ID, room.ID)
		}
	}

	s.observers.NotifyUpdated(&updated)
	return true
}

// ListByUserEmail returns the bookings owned by the account with the given
// email, downgrading storage faults to an empty result.
func (s *Service) ListByUserEmail(ctx context.Context, email string) []domain.Booking {
	out, err := s.bookings.FindByUserEmail(ctx, email)
	if err != nil {
		s.loggerf("level=warn msg=booking list failed email=%s err=%v", email, err)
		return nil
	}
	return out
}

// DisplayStatus derives the status shown for a booking by cross-referencing
// the occupying room. When the room's snapshot names this booking and its
// condition agrees with a booking lifecycle state, the room wins; otherwise
// the booking's own status is the default.
func (s *Service) DisplayStatus(ctx context.Context, b *domain.Booking) domain.BookingStatus {
	if b.RoomNumber == "" {
		return b.Status
	}
	room, err := s.rooms.GetByNumber(ctx, b.RoomNumber)
	if err != nil || room == nil || room.Context.Snapshot.BookingID != b.ID {
		return b.Status
	}
	switch room.Context.Condition {
	case domain.ConditionReserved:
		return domain.BookingReserved
	case domain.ConditionInUse:
		return domain.BookingInUse
	case domain.ConditionNoShow:
		return domain.BookingNoShow
	}
	return b.Status
}

func (s *Service) cachePut(b *domain.Booking) {
	s.mu.Lock()
	s.cache[b.ID] = b
	s.mu.Unlock()
}

func (s *Service) cacheEvict(id string) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}

// The façade doubles as a booking observer so mutations dispatched through
// the command controller keep the lookup cache coherent.

func (s *Service) BookingCreated(b *domain.Booking) { s.cachePut(b) }

func (s *Service) BookingUpdated(b *domain.Booking) { s.cachePut(b) }

func (s *Service) BookingCancelled(b *domain.Booking) { s.cacheEvict(b.ID) }

var _ booking.Observer = (*Service)(nil)
