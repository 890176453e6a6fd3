package service

import (
	"context"

	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/bornholm/pettymatters/internal/metrics"
	"github.com/pkg/errors"
)

// StoreWriter applies write operations to the stores. It is the handler of
// the write queue.
type StoreWriter struct {
	topics   port.TopicStore
	comments port.CommentStore
}

// Handle implements port.WriteHandler.
func (w *StoreWriter) Handle(ctx context.Context, op port.WriteOperation) error {
	switch typed := op.(type) {
	case *port.CreateTopicOperation:
		if err := w.topics.SaveTopic(ctx, typed.Topic); err != nil {
			return errors.Wrapf(err, "could not save topic '%s'", typed.Topic.ID())
		}

		metrics.TotalTopics.Inc()

	case *port.AddCommentOperation:
		if err := w.comments.SaveComment(ctx, typed.Comment); err != nil {
			return errors.Wrapf(err, "could not save comment '%s'", typed.Comment.ID())
		}

		metrics.TotalComments.Inc()

	default:
		return errors.Errorf("unexpected write operation '%s'", op.Type())
	}

	return nil
}

func NewStoreWriter(topics port.TopicStore, comments port.CommentStore) *StoreWriter {
	return &StoreWriter{
		topics:   topics,
		comments: comments,
	}
}

var _ port.WriteHandler = &StoreWriter{}
