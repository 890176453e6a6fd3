package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/pkg/errors"
)

// Store keeps topics and comments in process memory. Its content is lost on
// restart.
type Store struct {
	mutex    sync.RWMutex
	topics   map[model.TopicID]*model.BaseTopic
	comments map[model.CommentID]*model.BaseComment
}

// SaveTopic implements port.TopicStore.
func (s *Store) SaveTopic(ctx context.Context, topic model.Topic) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.topics[topic.ID()] = model.CopyTopic(topic)

	return nil
}

// GetTopic implements port.TopicStore.
func (s *Store) GetTopic(ctx context.Context, id model.TopicID) (model.Topic, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	topic, exists := s.topics[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return model.CopyTopic(topic), nil
}

// QueryTopics implements port.TopicStore.
func (s *Store) QueryTopics(ctx context.Context, opts model.ListOptions) (*model.Page[model.Topic], error) {
	opts = opts.Normalize()

	s.mutex.RLock()
	matches := make([]*model.BaseTopic, 0, len(s.topics))
	for _, t := range s.topics {
		if matchTopic(t, opts.Filters) {
			matches = append(matches, model.CopyTopic(t))
		}
	}
	s.mutex.RUnlock()

	slices.SortFunc(matches, topicComparator(opts))

	return paginate(matches, opts, func(t *model.BaseTopic) model.Topic { return t }), nil
}

// DeleteTopic implements port.TopicStore.
func (s *Store) DeleteTopic(ctx context.Context, id model.TopicID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.topics, id)

	for commentID, c := range s.comments {
		if c.TopicID() == id {
			delete(s.comments, commentID)
		}
	}

	return nil
}

// SaveComment implements port.CommentStore.
func (s *Store) SaveComment(ctx context.Context, comment model.Comment) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.topics[comment.TopicID()]; !exists {
		return errors.Wrapf(port.ErrNotFound, "could not find topic '%s'", comment.TopicID())
	}

	s.comments[comment.ID()] = model.CopyComment(comment)

	return nil
}

// QueryComments implements port.CommentStore.
func (s *Store) QueryComments(ctx context.Context, opts model.ListOptions) (*model.Page[model.Comment], error) {
	opts = opts.Normalize()

	s.mutex.RLock()
	matches := make([]*model.BaseComment, 0)
	for _, c := range s.comments {
		if matchComment(c, opts.Filters) {
			matches = append(matches, model.CopyComment(c))
		}
	}
	s.mutex.RUnlock()

	slices.SortFunc(matches, commentComparator(opts))

	return paginate(matches, opts, func(c *model.BaseComment) model.Comment { return c }), nil
}

func NewStore() *Store {
	return &Store{
		topics:   map[model.TopicID]*model.BaseTopic{},
		comments: map[model.CommentID]*model.BaseComment{},
	}
}

var (
	_ port.TopicStore   = &Store{}
	_ port.CommentStore = &Store{}
)

func matchTopic(t model.Topic, filters map[string]string) bool {
	for key, value := range filters {
		switch key {
		case "id":
			if string(t.ID()) != value {
				return false
			}
		case port.TopicFilterCreatedBy:
			if t.Author() != value {
				return false
			}
		}
	}

	return true
}

func matchComment(c model.Comment, filters map[string]string) bool {
	for key, value := range filters {
		switch key {
		case "id":
			if string(c.ID()) != value {
				return false
			}
		case port.CommentFilterTopicID:
			if string(c.TopicID()) != value {
				return false
			}
		case port.CommentFilterCreatedBy:
			if c.Author() != value {
				return false
			}
		}
	}

	return true
}

func topicComparator(opts model.ListOptions) func(a, b *model.BaseTopic) int {
	var compare func(a, b *model.BaseTopic) int

	switch opts.OrderBy {
	case port.TopicOrderByLastUpdatedTime:
		compare = func(a, b *model.BaseTopic) int { return a.UpdatedAt().Compare(b.UpdatedAt()) }
	case port.TopicOrderByCreatedBy:
		compare = func(a, b *model.BaseTopic) int { return cmp.Compare(a.Author(), b.Author()) }
	case port.TopicOrderByCreationTime:
		compare = func(a, b *model.BaseTopic) int { return a.CreatedAt().Compare(b.CreatedAt()) }
	default:
		return func(a, b *model.BaseTopic) int {
			return cmp.Or(b.CreatedAt().Compare(a.CreatedAt()), cmp.Compare(a.ID(), b.ID()))
		}
	}

	return withDirection(compare, opts.Ordering, func(a, b *model.BaseTopic) int { return cmp.Compare(a.ID(), b.ID()) })
}

func commentComparator(opts model.ListOptions) func(a, b *model.BaseComment) int {
	var compare func(a, b *model.BaseComment) int

	switch opts.OrderBy {
	case port.CommentOrderByCreatedBy:
		compare = func(a, b *model.BaseComment) int { return cmp.Compare(a.Author(), b.Author()) }
	case port.CommentOrderByCreationTime:
		compare = func(a, b *model.BaseComment) int { return a.CreatedAt().Compare(b.CreatedAt()) }
	default:
		return func(a, b *model.BaseComment) int {
			return cmp.Or(b.CreatedAt().Compare(a.CreatedAt()), cmp.Compare(a.ID(), b.ID()))
		}
	}

	return withDirection(compare, opts.Ordering, func(a, b *model.BaseComment) int { return cmp.Compare(a.ID(), b.ID()) })
}

func withDirection[T any](compare func(a, b T) int, ordering model.Ordering, tieBreak func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		result := compare(a, b)
		if ordering == model.OrderingDescending {
			result = -result
		}
		return cmp.Or(result, tieBreak(a, b))
	}
}

func paginate[E any, T any](items []E, opts model.ListOptions, convert func(E) T) *model.Page[T] {
	offset := min(opts.Offset(), len(items))
	end := min(offset+opts.Limit(), len(items))

	page := &model.Page[T]{
		Items:      make([]T, 0, end-offset),
		PageNumber: opts.PageNumber,
		PageSize:   opts.PageSize,
		TotalCount: int64(len(items)),
	}

	for _, item := range items[offset:end] {
		page.Items = append(page.Items, convert(item))
	}

	return page
}
