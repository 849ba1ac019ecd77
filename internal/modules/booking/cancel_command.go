package booking

import "context"

// CancelBookingCommand refunds the remaining cost, hard-deletes the booking
// record and releases the room.
type CancelBookingCommand struct {
	deps      Deps
	bookingID string
	memo      *memento
	undone    bool
}

func NewCancelBookingCommand(deps Deps, bookingID string) *CancelBookingCommand {
	return &CancelBookingCommand{deps: deps, bookingID: bookingID}
}

func (c *CancelBookingCommand) Execute(ctx context.Context) bool {
	if c.memo != nil {
		return false
	}
	b := c.deps.loadPreStart(ctx, c.bookingID)
	if b == nil {
		return false
	}

	memo := &memento{before: *b}

	if !c.deps.Payments.Refund(b.TotalCost) {
		return false
	}
	memo.paid = -b.TotalCost

	// Booking record first, then the room. A room failure past this point
	// is logged and surfaced through the room's own state, not hidden by
	// rolling the cancellation back.
	if err := c.deps.Bookings.Delete(ctx, b.ID); err != nil {
		c.deps.logf("level=error msg=booking delete failed booking_id=%s err=%v", b.ID, err)
		c.deps.Payments.Charge(b.TotalCost)
		return false
	}
	memo.deleted = true

	if b.RoomNumber != "" {
		room, err := c.deps.Rooms.GetByNumber(ctx, b.RoomNumber)
		if err != nil {
			c.deps.logf("level=error msg=room lookup failed on cancel booking_id=%s room=%s err=%v", b.ID, b.RoomNumber, err)
		} else if c.deps.Rooms.CancelBooking(ctx, room.ID) {
			memo.oldRoomID = room.ID
		} else {
			c.deps.logf("level=error msg=room release failed on cancel booking_id=%s room_id=%s", b.ID, room.ID)
		}
	}

	c.memo = memo
	c.deps.Observers.NotifyCancelled(&memo.before)
	return true
}

func (c *CancelBookingCommand) Undo(ctx context.Context) bool {
	if c.memo == nil || c.undone {
		return false
	}
	restored := c.memo.before
	if err := c.deps.Bookings.Save(ctx, &restored); err != nil {
		c.deps.logf("level=error msg=booking restore failed booking_id=%s err=%v", restored.ID, err)
		return false
	}
	if c.memo.oldRoomID != "" {
		if !c.deps.Rooms.Book(ctx, c.memo.oldRoomID, snapshotOf(&restored)) {
			c.deps.logf("level=error msg=room re-book failed on undo booking_id=%s room_id=%s", restored.ID, c.memo.oldRoomID)
		}
	}
	c.deps.reversePayment(c.memo.paid)
	c.undone = true
	c.deps.Observers.NotifyCreated(&restored)
	return true
}

var _ Command = (*CancelBookingCommand)(nil)
