package gorm

import (
	"context"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	topicFilterable = map[string]string{
		"id":                      "id",
		port.TopicFilterCreatedBy: "created_by",
	}
	topicSortable = map[string]string{
		port.TopicOrderByCreationTime:    "creation_time",
		port.TopicOrderByLastUpdatedTime: "last_updated_time",
		port.TopicOrderByCreatedBy:       "created_by",
	}
)

// SaveTopic implements port.TopicStore.
func (s *Store) SaveTopic(ctx context.Context, topic model.Topic) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		t := fromTopic(topic)

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit(clause.Associations).Create(t).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetTopic implements port.TopicStore.
func (s *Store) GetTopic(ctx context.Context, id model.TopicID) (model.Topic, error) {
	var topic Topic

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&topic, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTopic{&topic}, nil
}

// QueryTopics implements port.TopicStore.
func (s *Store) QueryTopics(ctx context.Context, opts model.ListOptions) (*model.Page[model.Topic], error) {
	opts = opts.Normalize()

	var (
		topics []*Topic
		total  int64
	)

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		filtered, paged := applyListOptions(db.Model(&Topic{}), opts, topicFilterable, topicSortable)

		if err := filtered.Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := paged.Find(&topics).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	page := &model.Page[model.Topic]{
		Items:      make([]model.Topic, 0, len(topics)),
		PageNumber: opts.PageNumber,
		PageSize:   opts.PageSize,
		TotalCount: total,
	}

	for _, t := range topics {
		page.Items = append(page.Items, &wrappedTopic{t})
	}

	return page, nil
}

// DeleteTopic implements port.TopicStore.
func (s *Store) DeleteTopic(ctx context.Context, id model.TopicID) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&Comment{}, "topic_id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.Delete(&Topic{}, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
