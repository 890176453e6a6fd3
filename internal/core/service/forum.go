package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/pkg/errors"
)

type ForumOptions struct {
	MaxTitleLength   int
	MaxContentLength int
}

type ForumOptionFunc func(opts *ForumOptions)

func WithForumMaxTitleLength(max int) ForumOptionFunc {
	return func(opts *ForumOptions) {
		opts.MaxTitleLength = max
	}
}

func WithForumMaxContentLength(max int) ForumOptionFunc {
	return func(opts *ForumOptions) {
		opts.MaxContentLength = max
	}
}

func NewForumOptions(funcs ...ForumOptionFunc) *ForumOptions {
	opts := &ForumOptions{
		MaxTitleLength:   200,
		MaxContentLength: 10000,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Forum reads topics and comments from the stores and submits every write
// through the queue. Written entities become visible once the queue applied
// them.
type Forum struct {
	topics   port.TopicStore
	comments port.CommentStore
	queue    port.WriteQueue

	maxTitleLength   int
	maxContentLength int
}

func (f *Forum) CreateTopic(ctx context.Context, title, content string, author model.User) (model.Topic, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, errors.Wrap(port.ErrInvalidInput, "title must not be empty")
	}

	if content == "" {
		return nil, errors.Wrap(port.ErrInvalidInput, "content must not be empty")
	}

	if utf8.RuneCountInString(title) > f.maxTitleLength {
		return nil, errors.Wrapf(port.ErrInvalidInput, "title must not exceed %d characters", f.maxTitleLength)
	}

	if utf8.RuneCountInString(content) > f.maxContentLength {
		return nil, errors.Wrapf(port.ErrInvalidInput, "content must not exceed %d characters", f.maxContentLength)
	}

	topic := model.NewTopic(title, content, model.Username(author))

	ctx = slogx.WithAttrs(ctx, slog.String("topicID", string(topic.ID())))

	if err := f.queue.Enqueue(ctx, &port.CreateTopicOperation{Topic: topic}); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "topic creation enqueued")

	return topic, nil
}

func (f *Forum) GetTopic(ctx context.Context, id model.TopicID) (model.Topic, error) {
	topic, err := f.topics.GetTopic(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return topic, nil
}

func (f *Forum) ListTopics(ctx context.Context, opts model.ListOptions) (*model.Page[model.Topic], error) {
	page, err := f.topics.QueryTopics(ctx, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return page, nil
}

func (f *Forum) ReplyToTopic(ctx context.Context, topicID model.TopicID, message string, author model.User) (model.Comment, error) {
	message = strings.TrimSpace(message)

	if message == "" {
		return nil, errors.Wrap(port.ErrInvalidInput, "message must not be empty")
	}

	if utf8.RuneCountInString(message) > f.maxContentLength {
		return nil, errors.Wrapf(port.ErrInvalidInput, "message must not exceed %d characters", f.maxContentLength)
	}

	if _, err := f.topics.GetTopic(ctx, topicID); err != nil {
		return nil, errors.WithStack(err)
	}

	comment := model.NewComment(topicID, message, model.Username(author))

	ctx = slogx.WithAttrs(ctx,
		slog.String("topicID", string(topicID)),
		slog.String("commentID", string(comment.ID())),
	)

	if err := f.queue.Enqueue(ctx, &port.AddCommentOperation{Comment: comment}); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "comment creation enqueued")

	return comment, nil
}

// ListComments returns the comments of the given topic. A topic filter
// present in opts is overridden.
func (f *Forum) ListComments(ctx context.Context, topicID model.TopicID, opts model.ListOptions) (*model.Page[model.Comment], error) {
	opts = opts.WithFilter(port.CommentFilterTopicID, string(topicID))

	page, err := f.comments.QueryComments(ctx, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return page, nil
}

func NewForum(topics port.TopicStore, comments port.CommentStore, queue port.WriteQueue, funcs ...ForumOptionFunc) *Forum {
	opts := NewForumOptions(funcs...)

	return &Forum{
		topics:           topics,
		comments:         comments,
		queue:            queue,
		maxTitleLength:   opts.MaxTitleLength,
		maxContentLength: opts.MaxContentLength,
	}
}
