package domain

import "time"

type BookingStatus string

const (
	BookingReserved  BookingStatus = "RESERVED"
	BookingInUse     BookingStatus = "IN_USE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingNoShow    BookingStatus = "NO_SHOW"
)

// Booking records the commercial and temporal facts of one reservation.
// Its status is tracked independently of the room's condition; RoomNumber
// is a weak lookup reference, not the room id.
type Booking struct {
	ID         string        `json:"id"`
	AccountID  string        `json:"account_id" validate:"required"`
	RoomID     string        `json:"room_id,omitempty"`
	Building   string        `json:"building,omitempty"`
	RoomNumber string        `json:"room_number,omitempty"`
	Date       string        `json:"date,omitempty"`
	StartTime  string        `json:"start_time,omitempty"`
	EndTime    string        `json:"end_time,omitempty"`
	Hours      int           `json:"hours" validate:"gt=0"`
	Rate       float64       `json:"rate" validate:"gte=0"`
	TotalCost  float64       `json:"total_cost"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// RecalculateCost derives TotalCost from Hours and Rate. Callers that
// override the cost directly skip this.
func (b *Booking) RecalculateCost() {
	b.TotalCost = float64(b.Hours) * b.Rate
}
