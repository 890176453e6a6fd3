package gorm

import (
	"time"

	"github.com/bornholm/pettymatters/internal/core/model"
)

type Comment struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	Topic   *Topic
	TopicID string `gorm:"index"`

	CreationTime    time.Time `gorm:"index"`
	LastUpdatedTime *time.Time

	Content string

	UpvotesCount   int64
	DownvotesCount int64

	CreatedBy string `gorm:"index"`
}

type wrappedComment struct {
	c *Comment
}

// ID implements model.Comment.
func (w *wrappedComment) ID() model.CommentID {
	return model.CommentID(w.c.ID)
}

// TopicID implements model.Comment.
func (w *wrappedComment) TopicID() model.TopicID {
	return model.TopicID(w.c.TopicID)
}

// Content implements model.Comment.
func (w *wrappedComment) Content() string {
	return w.c.Content
}

// Author implements model.Comment.
func (w *wrappedComment) Author() string {
	return w.c.CreatedBy
}

// Upvotes implements model.Comment.
func (w *wrappedComment) Upvotes() int64 {
	return w.c.UpvotesCount
}

// Downvotes implements model.Comment.
func (w *wrappedComment) Downvotes() int64 {
	return w.c.DownvotesCount
}

// CreatedAt implements model.Comment.
func (w *wrappedComment) CreatedAt() time.Time {
	return w.c.CreationTime.UTC()
}

// UpdatedAt implements model.Comment.
func (w *wrappedComment) UpdatedAt() time.Time {
	if w.c.LastUpdatedTime == nil {
		return time.Time{}
	}

	return w.c.LastUpdatedTime.UTC()
}

var _ model.Comment = &wrappedComment{}

func fromComment(c model.Comment) *Comment {
	return &Comment{
		ID:              string(c.ID()),
		TopicID:         string(c.TopicID()),
		CreationTime:    c.CreatedAt().UTC(),
		LastUpdatedTime: optionalTime(c.UpdatedAt()),
		Content:         c.Content(),
		UpvotesCount:    c.Upvotes(),
		DownvotesCount:  c.Downvotes(),
		CreatedBy:       c.Author(),
	}
}
