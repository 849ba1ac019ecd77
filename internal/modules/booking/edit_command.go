package booking

import (
	"context"

	"roomdesk/internal/domain"
	"roomdesk/internal/pkg/timeutil"
)

// EditParams carries the fields to change. Empty fields keep the booking's
// current value.
type EditParams struct {
	RoomNumber string
	Date       string
	StartTime  string
	EndTime    string
}

// EditBookingCommand re-targets a pre-start booking to a new room, date or
// time range, adjusting the payment by the price delta.
type EditBookingCommand struct {
	deps      Deps
	bookingID string
	params    EditParams
	memo      *memento
	undone    bool
}

func NewEditBookingCommand(deps Deps, bookingID string, params EditParams) *EditBookingCommand {
	return &EditBookingCommand{deps: deps, bookingID: bookingID, params: params}
}

func (c *EditBookingCommand) Execute(ctx context.Context) bool {
	if c.memo != nil {
		return false
	}
	b := c.deps.loadPreStart(ctx, c.bookingID)
	if b == nil {
		return false
	}

	target := *b
	if c.params.RoomNumber != "" {
		target.RoomNumber = c.params.RoomNumber
	}
	if c.params.Date != "" {
		target.Date = c.params.Date
	}
	if c.params.StartTime != "" {
		target.StartTime = c.params.StartTime
	}
	if c.params.EndTime != "" {
		target.EndTime = c.params.EndTime
	}

	if target.StartTime != "" && target.EndTime != "" {
		hours, ok := timeutil.HoursBetween(target.StartTime, target.EndTime)
		if !ok {
			return false
		}
		target.Hours = hours
		target.RecalculateCost()
	}

	var oldRoom, newRoom *domain.Room
	var err error
	if b.RoomNumber != "" {
		oldRoom, err = c.deps.Rooms.GetByNumber(ctx, b.RoomNumber)
		if err != nil {
			c.deps.logf("level=warn msg=current room lookup failed booking_id=%s room=%s err=%v", b.ID, b.RoomNumber, err)
			return false
		}
	}
	if target.RoomNumber != "" {
		newRoom, err = c.deps.Rooms.GetByNumber(ctx, target.RoomNumber)
		if err != nil {
			return false
		}
		target.RoomID = newRoom.ID
		target.Building = newRoom.Building

		if c.hasConflict(ctx, &target, b.ID) {
			return false
		}
	}

	delta := target.TotalCost - b.TotalCost
	if delta > 0 && !c.deps.Payments.Charge(delta) {
		return false
	}
	if delta < 0 && !c.deps.Payments.Refund(-delta) {
		return false
	}

	memo := &memento{before: *b, paid: delta}

	if err := c.deps.Bookings.Update(ctx, &target); err != nil {
		c.deps.logf("level=error msg=booking update failed booking_id=%s err=%v", b.ID, err)
		c.deps.reversePayment(delta)
		return false
	}

	// Release before reserve so an in-place time change refreshes the
	// snapshot on the same room.
	if oldRoom != nil {
		if c.deps.Rooms.CancelBooking(ctx, oldRoom.ID) {
			memo.oldRoomID = oldRoom.ID
		} else {
			c.deps.logf("level=error msg=room release failed on edit booking_id=%s room_id=%s", b.ID, oldRoom.ID)
		}
	}
	if newRoom != nil {
		if c.deps.Rooms.Book(ctx, newRoom.ID, snapshotOf(&target)) {
			memo.newRoomID = newRoom.ID
		} else {
			c.deps.logf("level=error msg=room reserve failed on edit booking_id=%s room_id=%s", b.ID, newRoom.ID)
		}
	}

	c.memo = memo
	c.deps.Observers.NotifyUpdated(&target)
	return true
}

func (c *EditBookingCommand) hasConflict(ctx context.Context, target *domain.Booking, excludeID string) bool {
	existing, err := c.deps.Bookings.FindByRoomAndDate(ctx, target.RoomNumber, target.Date)
	if err != nil {
		c.deps.logf("level=warn msg=conflict scan failed room=%s date=%s err=%v", target.RoomNumber, target.Date, err)
		return true
	}
	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		if existing[i].ConflictsWith(target.RoomNumber, target.Date, target.StartTime, target.EndTime) {
			return true
		}
	}
	return false
}

func (c *EditBookingCommand) Undo(ctx context.Context) bool {
	if c.memo == nil || c.undone {
		return false
	}
	restored := c.memo.before
	if err := c.deps.Bookings.Update(ctx, &restored); err != nil {
		c.deps.logf("level=error msg=booking restore failed booking_id=%s err=%v", restored.ID, err)
		return false
	}
	if c.memo.newRoomID != "" {
		c.deps.Rooms.CancelBooking(ctx, c.memo.newRoomID)
	}
	if c.memo.oldRoomID != "" {
		if !c.deps.Rooms.Book(ctx, c.memo.oldRoomID, snapshotOf(&restored)) {
			c.deps.logf("level=error msg=room re-book failed on undo booking_id=%s room_id=%s", restored.ID, c.memo.oldRoomID)
		}
	}
	c.deps.reversePayment(c.memo.paid)
	c.undone = true
	c.deps.Observers.NotifyUpdated(&restored)
	return true
}

var _ Command = (*EditBookingCommand)(nil)
