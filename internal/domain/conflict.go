package domain

import "strings"

// RangesConflict reports whether the stored range [start, end) conflicts
// with the probe [probeStart, probeEnd) under inclusive-start/exclusive-end
// semantics. Equal start times always conflict; a probe starting exactly at
// the stored end (or ending exactly at the stored start) does not.
func RangesConflict(start, end, probeStart, probeEnd string) bool {
	if probeStart == start {
		return true
	}
	return probeStart < end && probeEnd > start
}

// ConflictsWith reports whether the booking occupies the same room and date
// as the probe range and the time ranges conflict. Cancelled bookings never
// conflict.
func (b *Booking) ConflictsWith(roomNumber, date, probeStart, probeEnd string) bool {
	if b.Status == BookingCancelled {
		return false
	}
	if b.RoomNumber == "" || !strings.EqualFold(b.RoomNumber, roomNumber) || b.Date != date {
		return false
	}
	return RangesConflict(b.StartTime, b.EndTime, probeStart, probeEnd)
}
