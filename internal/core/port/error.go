package port

import "github.com/pkg/errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrQueueClosed  = errors.New("queue closed")
)
