package booking

import (
	"context"

	"roomdesk/internal/domain"
	"roomdesk/internal/pkg/timeutil"
)

// ExtendBookingCommand lengthens a Reserved or InUse booking by whole hours,
// charging the incremental cost. The end time wraps past midnight.
type ExtendBookingCommand struct {
	deps      Deps
	bookingID string
	hours     int
	memo      *memento
	undone    bool
}

func NewExtendBookingCommand(deps Deps, bookingID string, hours int) *ExtendBookingCommand {
	return &ExtendBookingCommand{deps: deps, bookingID: bookingID, hours: hours}
}

func (c *ExtendBookingCommand) Execute(ctx context.Context) bool {
	if c.memo != nil || c.hours <= 0 {
		return false
	}
	b, err := c.deps.Bookings.FindByID(ctx, c.bookingID)
	if err != nil || b == nil {
		if err != nil {
			c.deps.logf("level=warn msg=booking lookup failed booking_id=%s err=%v", c.bookingID, err)
		}
		return false
	}
	if b.Status != domain.BookingReserved && b.Status != domain.BookingInUse {
		return false
	}
	if b.EndTime == "" {
		return false
	}
	newEnd, ok := timeutil.AddHours(b.EndTime, c.hours)
	if !ok {
		return false
	}

	increment := float64(c.hours) * b.Rate
	if !c.deps.Payments.Charge(increment) {
		return false
	}

	memo := &memento{before: *b, paid: increment}

	target := *b
	target.EndTime = newEnd
	target.Hours += c.hours
	target.RecalculateCost()

	if err := c.deps.Bookings.Update(ctx, &target); err != nil {
		c.deps.logf("level=error msg=booking update failed booking_id=%s err=%v", b.ID, err)
		c.deps.Payments.Refund(increment)
		return false
	}

	// The room transition only fires while InUse; a Reserved room keeps its
	// original snapshot and the display layer reconciles from the booking.
	if target.RoomNumber != "" {
		room, err := c.deps.Rooms.GetByNumber(ctx, target.RoomNumber)
		if err != nil {
			c.deps.logf("level=warn msg=room lookup failed on extend booking_id=%s room=%s err=%v", b.ID, target.RoomNumber, err)
		} else if c.deps.Rooms.ExtendBooking(ctx, room.ID, c.hours) {
			memo.newRoomID = room.ID
		}
	}

	c.memo = memo
	c.deps.Observers.NotifyUpdated(&target)
	return true
}

func (c *ExtendBookingCommand) Undo(ctx context.Context) bool {
	if c.memo == nil || c.undone {
		return false
	}
	restored := c.memo.before
	if err := c.deps.Bookings.Update(ctx, &restored); err != nil {
		c.deps.logf("level=error msg=booking restore failed booking_id=%s err=%v", restored.ID, err)
		return false
	}
	if c.memo.newRoomID != "" {
		c.deps.Rooms.ExtendBooking(ctx, c.memo.newRoomID, -c.hours)
	}
	c.deps.reversePayment(c.memo.paid)
	c.undone = true
	c.deps.Observers.NotifyUpdated(&restored)
	return true
}

var _ Command = (*ExtendBookingCommand)(nil)
