package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/pettymatters/internal/http/handler/api"
	"github.com/pkg/errors"
)

type Topic = api.Topic

type ListTopicsOptions struct {
	Page   int
	Limit  int
	Author string
}

type ListTopicsOptionFunc func(opts *ListTopicsOptions)

func WithListTopicsPage(page int) ListTopicsOptionFunc {
	return func(opts *ListTopicsOptions) {
		opts.Page = page
	}
}

func WithListTopicsLimit(limit int) ListTopicsOptionFunc {
	return func(opts *ListTopicsOptions) {
		opts.Limit = limit
	}
}

func WithListTopicsAuthor(author string) ListTopicsOptionFunc {
	return func(opts *ListTopicsOptions) {
		opts.Author = author
	}
}

func NewListTopicsOptions(funcs ...ListTopicsOptionFunc) *ListTopicsOptions {
	opts := &ListTopicsOptions{
		Page:  1,
		Limit: 20,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// ListTopics returns a page of topics, newest first, and the total number of
// topics.
func (c *Client) ListTopics(ctx context.Context, funcs ...ListTopicsOptionFunc) ([]Topic, int64, error) {
	opts := NewListTopicsOptions(funcs...)

	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("limit", strconv.Itoa(opts.Limit))

	if opts.Author != "" {
		query.Set("author", opts.Author)
	}

	var res api.ListTopicsResponse

	if err := c.jsonRequest(ctx, http.MethodGet, "/topics?"+query.Encode(), nil, nil, &res); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return res.Topics, res.Total, nil
}

func (c *Client) GetTopic(ctx context.Context, topicID string) (*Topic, error) {
	var res api.GetTopicResponse

	if err := c.jsonRequest(ctx, http.MethodGet, fmt.Sprintf("/topics/%s", url.PathEscape(topicID)), nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Topic, nil
}
