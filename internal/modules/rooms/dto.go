package rooms

type CreateRoomRequest struct {
	Building string `json:"building" binding:"required"`
	Number   string `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ENABLED DISABLED"`
}
