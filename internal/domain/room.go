package domain

import (
	"strings"
	"time"
)

type RoomStatus string

const (
	RoomEnabled  RoomStatus = "ENABLED"
	RoomDisabled RoomStatus = "DISABLED"
)

// Room is the physical aggregate: identity, capacity, location and the
// administrative enabled/disabled flag. Occupancy lives in the owned Context.
type Room struct {
	ID        string      `json:"id"`
	Building  string      `json:"building" validate:"required"`
	Number    string      `json:"number" validate:"required"`
	Capacity  int         `json:"capacity" validate:"required,gt=0"`
	Status    RoomStatus  `json:"status"`
	Context   RoomContext `json:"context"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (r *Room) Enabled() bool {
	return r.Status == RoomEnabled
}

// LocationKey is the case-insensitive unique key (building, number).
func (r *Room) LocationKey() string {
	return strings.ToLower(r.Building) + "/" + strings.ToLower(r.Number)
}
