package port

import (
	"context"

	"github.com/bornholm/pettymatters/internal/core/model"
)

const (
	CommentOrderByCreationTime = "creation_time"
	CommentOrderByCreatedBy    = "created_by"

	CommentFilterTopicID   = "topic_id"
	CommentFilterCreatedBy = "created_by"
)

type CommentStore interface {
	// SaveComment creates the comment or replaces the stored one with the
	// same id
	SaveComment(ctx context.Context, comment model.Comment) error

	// QueryComments returns a page of comments matching the given options.
	// Unknown filters and order attributes are ignored.
	QueryComments(ctx context.Context, opts model.ListOptions) (*model.Page[model.Comment], error)
}
