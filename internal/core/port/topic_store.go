package port

import (
	"context"

	"github.com/bornholm/pettymatters/internal/core/model"
)

const (
	TopicOrderByCreationTime    = "creation_time"
	TopicOrderByLastUpdatedTime = "last_updated_time"
	TopicOrderByCreatedBy       = "created_by"

	TopicFilterCreatedBy = "created_by"
)

type TopicStore interface {
	// SaveTopic creates the topic or replaces the stored one with the same id
	SaveTopic(ctx context.Context, topic model.Topic) error

	// GetTopic returns the topic with the given id, or ErrNotFound
	GetTopic(ctx context.Context, id model.TopicID) (model.Topic, error)

	// QueryTopics returns a page of topics matching the given options.
	// Unknown filters and order attributes are ignored.
	QueryTopics(ctx context.Context, opts model.ListOptions) (*model.Page[model.Topic], error)

	// DeleteTopic removes the topic and its comments. Deleting a missing
	// topic is not an error.
	DeleteTopic(ctx context.Context, id model.TopicID) error
}
