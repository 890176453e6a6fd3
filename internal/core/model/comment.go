package model

import (
	"time"

	"github.com/rs/xid"
)

type CommentID string

func NewCommentID() CommentID {
	return CommentID(xid.New().String())
}

type Comment interface {
	WithID[CommentID]
	WithAuthor
	WithVotes
	WithLifecycle

	TopicID() TopicID
	Content() string
}

type BaseComment struct {
	id        CommentID
	topicID   TopicID
	content   string
	author    string
	upvotes   int64
	downvotes int64
	createdAt time.Time
	updatedAt time.Time
}

// ID implements Comment.
func (c *BaseComment) ID() CommentID {
	return c.id
}

// TopicID implements Comment.
func (c *BaseComment) TopicID() TopicID {
	return c.topicID
}

// Content implements Comment.
func (c *BaseComment) Content() string {
	return c.content
}

// Author implements Comment.
func (c *BaseComment) Author() string {
	return c.author
}

// Upvotes implements Comment.
func (c *BaseComment) Upvotes() int64 {
	return c.upvotes
}

// Downvotes implements Comment.
func (c *BaseComment) Downvotes() int64 {
	return c.downvotes
}

// CreatedAt implements Comment.
func (c *BaseComment) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt implements Comment.
func (c *BaseComment) UpdatedAt() time.Time {
	return c.updatedAt
}

var _ Comment = &BaseComment{}

func NewComment(topicID TopicID, content, author string) *BaseComment {
	return &BaseComment{
		id:        NewCommentID(),
		topicID:   topicID,
		content:   content,
		author:    author,
		createdAt: time.Now().UTC(),
	}
}

func NewReadOnlyComment(id CommentID, topicID TopicID, content, author string, upvotes, downvotes int64, createdAt, updatedAt time.Time) *BaseComment {
	return &BaseComment{
		id:        id,
		topicID:   topicID,
		content:   content,
		author:    author,
		upvotes:   upvotes,
		downvotes: downvotes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// CopyComment returns a detached copy of the given comment.
func CopyComment(c Comment) *BaseComment {
	return NewReadOnlyComment(c.ID(), c.TopicID(), c.Content(), c.Author(), c.Upvotes(), c.Downvotes(), c.CreatedAt(), c.UpdatedAt())
}
