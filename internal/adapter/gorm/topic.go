package gorm

import (
	"time"

	"github.com/bornholm/pettymatters/internal/core/model"
)

type Topic struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreationTime    time.Time `gorm:"index"`
	LastUpdatedTime *time.Time

	Title   string
	Content string

	UpvotesCount   int64
	DownvotesCount int64

	CreatedBy string `gorm:"index"`

	Comments []*Comment `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE;"`
}

type wrappedTopic struct {
	t *Topic
}

// ID implements model.Topic.
func (w *wrappedTopic) ID() model.TopicID {
	return model.TopicID(w.t.ID)
}

// Title implements model.Topic.
func (w *wrappedTopic) Title() string {
	return w.t.Title
}

// Content implements model.Topic.
func (w *wrappedTopic) Content() string {
	return w.t.Content
}

// Author implements model.Topic.
func (w *wrappedTopic) Author() string {
	return w.t.CreatedBy
}

// Upvotes implements model.Topic.
func (w *wrappedTopic) Upvotes() int64 {
	return w.t.UpvotesCount
}

// Downvotes implements model.Topic.
func (w *wrappedTopic) Downvotes() int64 {
	return w.t.DownvotesCount
}

// CreatedAt implements model.Topic.
func (w *wrappedTopic) CreatedAt() time.Time {
	return w.t.CreationTime.UTC()
}

// UpdatedAt implements model.Topic.
func (w *wrappedTopic) UpdatedAt() time.Time {
	if w.t.LastUpdatedTime == nil {
		return time.Time{}
	}

	return w.t.LastUpdatedTime.UTC()
}

var _ model.Topic = &wrappedTopic{}

func fromTopic(t model.Topic) *Topic {
	return &Topic{
		ID:              string(t.ID()),
		CreationTime:    t.CreatedAt().UTC(),
		LastUpdatedTime: optionalTime(t.UpdatedAt()),
		Title:           t.Title(),
		Content:         t.Content(),
		UpvotesCount:    t.Upvotes(),
		DownvotesCount:  t.Downvotes(),
		CreatedBy:       t.Author(),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	utc := t.UTC()

	return &utc
}
