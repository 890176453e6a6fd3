package model

import (
	"time"

	"github.com/rs/xid"
)

type TopicID string

func NewTopicID() TopicID {
	return TopicID(xid.New().String())
}

type Topic interface {
	WithID[TopicID]
	WithAuthor
	WithVotes
	WithLifecycle

	Title() string
	Content() string
}

type BaseTopic struct {
	id        TopicID
	title     string
	content   string
	author    string
	upvotes   int64
	downvotes int64
	createdAt time.Time
	updatedAt time.Time
}

// ID implements Topic.
func (t *BaseTopic) ID() TopicID {
	return t.id
}

// Title implements Topic.
func (t *BaseTopic) Title() string {
	return t.title
}

// Content implements Topic.
func (t *BaseTopic) Content() string {
	return t.content
}

// Author implements Topic.
func (t *BaseTopic) Author() string {
	return t.author
}

// Upvotes implements Topic.
func (t *BaseTopic) Upvotes() int64 {
	return t.upvotes
}

// Downvotes implements Topic.
func (t *BaseTopic) Downvotes() int64 {
	return t.downvotes
}

// CreatedAt implements Topic.
func (t *BaseTopic) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt implements Topic.
func (t *BaseTopic) UpdatedAt() time.Time {
	return t.updatedAt
}

var _ Topic = &BaseTopic{}

func NewTopic(title, content, author string) *BaseTopic {
	return &BaseTopic{
		id:        NewTopicID(),
		title:     title,
		content:   content,
		author:    author,
		createdAt: time.Now().UTC(),
	}
}

func NewReadOnlyTopic(id TopicID, title, content, author string, upvotes, downvotes int64, createdAt, updatedAt time.Time) *BaseTopic {
	return &BaseTopic{
		id:        id,
		title:     title,
		content:   content,
		author:    author,
		upvotes:   upvotes,
		downvotes: downvotes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// CopyTopic returns a detached copy of the given topic.
func CopyTopic(t Topic) *BaseTopic {
	return NewReadOnlyTopic(t.ID(), t.Title(), t.Content(), t.Author(), t.Upvotes(), t.Downvotes(), t.CreatedAt(), t.UpdatedAt())
}
