package group

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("group not found")
	ErrInUse         = errors.New("group is still referenced by contacts")
	ErrDuplicateName = errors.New("group name already exists")
)
