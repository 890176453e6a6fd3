package model

import (
	"time"
)

type WithID[T ~string] interface {
	ID() T
}

type WithAuthor interface {
	Author() string
}

type WithVotes interface {
	Upvotes() int64
	Downvotes() int64
}

type WithLifecycle interface {
	CreatedAt() time.Time
	// UpdatedAt returns the zero time if the entity was never updated
	UpdatedAt() time.Time
}
