package booking

import (
	"context"

	"roomdesk/internal/domain"
	"roomdesk/internal/pkg/timeutil"
)

// Command is one reversible booking mutation. Execute returns false for
// every expected failure (missing booking, illegal state, conflict,
// declined payment) with no side effects. Undo restores the pre-execute
// snapshot once; it returns false when no snapshot was ever captured.
type Command interface {
	Execute(ctx context.Context) bool
	Undo(ctx context.Context) bool
}

// Deps bundles the collaborators every command needs.
type Deps struct {
	Bookings  BookingRepository
	Rooms     RoomService
	Payments  PaymentService
	Clock     timeutil.Clock
	Observers *ObserverList
	Loggerf   func(format string, args ...interface{})
}

func (d Deps) logf(format string, args ...interface{}) {
	if d.Loggerf != nil {
		d.Loggerf(format, args...)
	}
}

// memento is the pre-execute snapshot consumed by Undo, plus the net
// payment and room writes Execute performed, so Undo can reverse them
// exactly.
type memento struct {
	before    domain.Booking
	paid      float64 // net charged; negative when Execute refunded
	deleted   bool
	oldRoomID string
	newRoomID string
}

func snapshotOf(b *domain.Booking) domain.BookingSnapshot {
	return domain.BookingSnapshot{
		BookingID: b.ID,
		UserID:    b.AccountID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

// reversePayment applies the opposite of the recorded net payment.
func (d Deps) reversePayment(paid float64) bool {
	if paid > 0 {
		return d.Payments.Refund(paid)
	}
	if paid < 0 {
		return d.Payments.Charge(-paid)
	}
	return true
}

// loadPreStart fetches a booking that is still Reserved ahead of its start
// time, the common precondition for cancel and edit.
func (d Deps) loadPreStart(ctx context.Context, bookingID string) *domain.Booking {
	b, err := d.Bookings.FindByID(ctx, bookingID)
	if err != nil || b == nil {
		if err != nil {
			d.logf("level=warn msg=booking lookup failed booking_id=%s err=%v", bookingID, err)
		}
		return nil
	}
	if b.Status != domain.BookingReserved || !timeutil.IsPreStart(d.Clock, b.Date, b.StartTime) {
		return nil
	}
	return b
}
