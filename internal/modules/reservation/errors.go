package reservation

import "errors"

var (
	ErrRoomNumberRequired = errors.New("room number is required")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomDisabled       = errors.New("room is disabled")
	ErrTimeConflict       = errors.New("time conflict with an existing booking")
	ErrRoomUnavailable    = errors.New("room could not be reserved")
	ErrValidation         = errors.New("validation error")
)
