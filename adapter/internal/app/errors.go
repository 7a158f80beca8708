package app

import "errors"

var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrNoListener        = errors.New("no listener set")
	ErrAlreadySubscribed = errors.New("item already subscribed")
	ErrNotSubscribed     = errors.New("item not subscribed")
)
