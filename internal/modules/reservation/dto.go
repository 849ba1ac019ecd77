package reservation

import "roomdesk/internal/domain"

type CreateBookingRequest struct {
	Hours      int    `json:"hours" binding:"required,gt=0"`
	RoomNumber string `json:"room_number"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type CheckInRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// BookingView decorates a booking with the display status derived from the
// occupying room.
type BookingView struct {
	domain.Booking
	DisplayStatus domain.BookingStatus `json:"display_status"`
}
