package contact

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("contact not found")
	ErrGroupNotFound = errors.New("referenced group does not exist")
	ErrBadPage       = errors.New("invalid page parameters")
	ErrBadSort       = errors.New("unknown sort field")
	ErrBadFilter     = errors.New("unknown filter field")
)
