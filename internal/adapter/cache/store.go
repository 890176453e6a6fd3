package cache

import (
	"context"
	"time"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/bornholm/pettymatters/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type Backend interface {
	port.TopicStore
	port.CommentStore
}

// Store caches topic lookups and list pages of its backend. Every write
// invalidates the affected entries, so readers only observe stale data
// written by other processes sharing the backend, and at most for the TTL.
type Store struct {
	backend      Backend
	topicCache   *expirable.LRU[model.TopicID, model.Topic]
	topicPages   *expirable.LRU[string, *model.Page[model.Topic]]
	commentPages *expirable.LRU[string, *model.Page[model.Comment]]
}

// SaveTopic implements port.TopicStore.
func (s *Store) SaveTopic(ctx context.Context, topic model.Topic) error {
	if err := s.backend.SaveTopic(ctx, topic); err != nil {
		return errors.WithStack(err)
	}

	s.topicCache.Remove(topic.ID())
	s.topicPages.Purge()

	return nil
}

// GetTopic implements port.TopicStore.
func (s *Store) GetTopic(ctx context.Context, id model.TopicID) (model.Topic, error) {
	if topic, exists := s.topicCache.Get(id); exists {
		observeLookup("topic", true)
		return topic, nil
	}

	observeLookup("topic", false)

	topic, err := s.backend.GetTopic(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.topicCache.Add(id, topic)

	return topic, nil
}

// QueryTopics implements port.TopicStore.
func (s *Store) QueryTopics(ctx context.Context, opts model.ListOptions) (*model.Page[model.Topic], error) {
	cacheKey := getListCacheKey(opts)

	if page, exists := s.topicPages.Get(cacheKey); exists {
		observeLookup("topic_pages", true)
		return page, nil
	}

	observeLookup("topic_pages", false)

	page, err := s.backend.QueryTopics(ctx, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.topicPages.Add(cacheKey, page)

	return page, nil
}

// DeleteTopic implements port.TopicStore.
func (s *Store) DeleteTopic(ctx context.Context, id model.TopicID) error {
	if err := s.backend.DeleteTopic(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	s.topicCache.Remove(id)
	s.topicPages.Purge()
	s.commentPages.Purge()

	return nil
}

// SaveComment implements port.CommentStore.
func (s *Store) SaveComment(ctx context.Context, comment model.Comment) error {
	if err := s.backend.SaveComment(ctx, comment); err != nil {
		return errors.WithStack(err)
	}

	s.commentPages.Purge()

	return nil
}

// QueryComments implements port.CommentStore.
func (s *Store) QueryComments(ctx context.Context, opts model.ListOptions) (*model.Page[model.Comment], error) {
	cacheKey := getListCacheKey(opts)

	if page, exists := s.commentPages.Get(cacheKey); exists {
		observeLookup("comment_pages", true)
		return page, nil
	}

	observeLookup("comment_pages", false)

	page, err := s.backend.QueryComments(ctx, opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.commentPages.Add(cacheKey, page)

	return page, nil
}

func NewStore(backend Backend, size int, ttl time.Duration) *Store {
	return &Store{
		backend:      backend,
		topicCache:   expirable.NewLRU[model.TopicID, model.Topic](size, nil, ttl),
		topicPages:   expirable.NewLRU[string, *model.Page[model.Topic]](size, nil, ttl),
		commentPages: expirable.NewLRU[string, *model.Page[model.Comment]](size, nil, ttl),
	}
}

var _ Backend = &Store{}

func observeLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	metrics.CacheLookups.With(prometheus.Labels{
		metrics.LabelCache:  cache,
		metrics.LabelResult: result,
	}).Inc()
}
