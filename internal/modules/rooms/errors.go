package rooms

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrLocationTaken = errors.New("room location already taken")
)
