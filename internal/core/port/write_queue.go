package port

import (
	"context"

	"github.com/bornholm/pettymatters/internal/core/model"
)

type WriteOperationType string

const (
	WriteOperationCreateTopic WriteOperationType = "create_topic"
	WriteOperationAddComment  WriteOperationType = "add_comment"
)

type WriteOperation interface {
	Type() WriteOperationType
}

type CreateTopicOperation struct {
	Topic model.Topic
}

// Type implements WriteOperation.
func (o *CreateTopicOperation) Type() WriteOperationType {
	return WriteOperationCreateTopic
}

type AddCommentOperation struct {
	Comment model.Comment
}

// Type implements WriteOperation.
func (o *AddCommentOperation) Type() WriteOperationType {
	return WriteOperationAddComment
}

var (
	_ WriteOperation = &CreateTopicOperation{}
	_ WriteOperation = &AddCommentOperation{}
)

type WriteQueue interface {
	// Enqueue schedules the operation. It blocks while the queue is full
	// and returns ErrQueueClosed once the queue stopped accepting work.
	Enqueue(ctx context.Context, op WriteOperation) error
}

type WriteHandler interface {
	Handle(ctx context.Context, op WriteOperation) error
}

type WriteHandlerFunc func(ctx context.Context, op WriteOperation) error

func (f WriteHandlerFunc) Handle(ctx context.Context, op WriteOperation) error {
	return f(ctx, op)
}
