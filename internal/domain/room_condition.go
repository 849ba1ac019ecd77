package domain

import "roomdesk/internal/pkg/timeutil"

type RoomCondition string

const (
	ConditionAvailable   RoomCondition = "AVAILABLE"
	ConditionReserved    RoomCondition = "RESERVED"
	ConditionInUse       RoomCondition = "IN_USE"
	ConditionMaintenance RoomCondition = "MAINTENANCE"
	ConditionNoShow      RoomCondition = "NO_SHOW"
)

// BookingSnapshot mirrors the identifying fields of the booking occupying a
// room. It is populated exactly while the condition is Reserved, InUse or
// NoShow and empty otherwise.
type BookingSnapshot struct {
	BookingID string `json:"booking_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

func (s BookingSnapshot) Empty() bool {
	return s == BookingSnapshot{}
}

// RoomContext holds a room's mutable occupancy: the current condition plus
// the snapshot of the occupying booking.
type RoomContext struct {
	Condition RoomCondition   `json:"condition"`
	Snapshot  BookingSnapshot `json:"snapshot"`
}

// The transition methods below implement the room state machine. Illegal
// moves are silently rejected: the receiver is left untouched and false is
// returned. Callers branch on the result, nothing is raised.

// Book moves an enabled Available room to Reserved and records the snapshot.
// A disabled room stays Available with no snapshot write.
func (r *Room) Book(snap BookingSnapshot) bool {
	if r.Context.Condition != ConditionAvailable || !r.Enabled() {
		return false
	}
	r.Context.Condition = ConditionReserved
	r.Context.Snapshot = snap
	return true
}

// CheckIn moves Reserved to InUse. The snapshot is retained.
func (r *Room) CheckIn() bool {
	if r.Context.Condition != ConditionReserved {
		return false
	}
	r.Context.Condition = ConditionInUse
	return true
}

// CheckOut moves InUse back to Available and clears the snapshot.
func (r *Room) CheckOut() bool {
	if r.Context.Condition != ConditionInUse {
		return false
	}
	r.Context.Condition = ConditionAvailable
	r.Context.Snapshot = BookingSnapshot{}
	return true
}

// CancelBooking releases a Reserved or NoShow room. On an Available or
// Maintenance room it is an accepted idempotent no-op. From InUse it is
// rejected; the occupant must check out first.
func (r *Room) CancelBooking() bool {
	switch r.Context.Condition {
	case ConditionReserved, ConditionNoShow:
		r.Context.Condition = ConditionAvailable
		r.Context.Snapshot = BookingSnapshot{}
		return true
	case ConditionAvailable, ConditionMaintenance:
		return true
	}
	return false
}

// TriggerNoShow marks a Reserved room whose start time elapsed without a
// check-in. The snapshot is retained for the administrative release.
func (r *Room) TriggerNoShow() bool {
	if r.Context.Condition != ConditionReserved {
		return false
	}
	r.Context.Condition = ConditionNoShow
	return true
}

// ExtendBooking advances the snapshot end time of an InUse room by the given
// number of hours, wrapping past midnight.
func (r *Room) ExtendBooking(hours int) bool {
	if r.Context.Condition != ConditionInUse || r.Context.Snapshot.EndTime == "" {
		return false
	}
	end, ok := timeutil.AddHours(r.Context.Snapshot.EndTime, hours)
	if !ok {
		return false
	}
	r.Context.Snapshot.EndTime = end
	return true
}

// SetMaintenance withdraws an Available room. Occupied rooms cannot enter
// Maintenance directly; the caller cancels the booking first.
func (r *Room) SetMaintenance() bool {
	if r.Context.Condition != ConditionAvailable {
		return false
	}
	r.Context.Condition = ConditionMaintenance
	r.Context.Snapshot = BookingSnapshot{}
	return true
}

// ClearMaintenance returns a Maintenance room to service.
func (r *Room) ClearMaintenance() bool {
	if r.Context.Condition != ConditionMaintenance {
		return false
	}
	r.Context.Condition = ConditionAvailable
	return true
}
