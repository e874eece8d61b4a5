package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrRemoteAPI       = errors.New("moysklad api error")
	ErrUnauthenticated = errors.New("unauthenticated")
)
