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
	commentFilterable = map[string]string{
		"id":                        "id",
		port.CommentFilterTopicID:   "topic_id",
		port.CommentFilterCreatedBy: "created_by",
	}
	commentSortable = map[string]string{
		port.CommentOrderByCreationTime: "creation_time",
		port.CommentOrderByCreatedBy:    "created_by",
	}
)

// SaveComment implements port.CommentStore.
func (s *Store) SaveComment(ctx context.Context, comment model.Comment) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		var count int64
		if err := db.Model(&Topic{}).Where("id = ?", string(comment.TopicID())).Count(&count).Error; err != nil {
			return errors.WithStack(err)
		}

		if count == 0 {
			return errors.Wrapf(port.ErrNotFound, "could not find topic '%s'", comment.TopicID())
		}

		c := fromComment(comment)

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit(clause.Associations).Create(c).Error
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

// QueryComments implements port.CommentStore.
func (s *Store) QueryComments(ctx context.Context, opts model.ListOptions) (*model.Page[model.Comment], error) {
	opts = opts.Normalize()

	var (
		comments []*Comment
		total    int64
	)

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		filtered, paged := applyListOptions(db.Model(&Comment{}), opts, commentFilterable, commentSortable)

		if err := filtered.Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := paged.Find(&comments).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	page := &model.Page[model.Comment]{
		Items:      make([]model.Comment, 0, len(comments)),
		PageNumber: opts.PageNumber,
		PageSize:   opts.PageSize,
		TotalCount: total,
	}

	for _, c := range comments {
		page.Items = append(page.Items, &wrappedComment{c})
	}

	return page, nil
}
