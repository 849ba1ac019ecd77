package booking

type EditBookingRequest struct {
	RoomNumber string `json:"room_number"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type ExtendBookingRequest struct {
	Hours int `json:"hours" binding:"required,gt=0"`
}
