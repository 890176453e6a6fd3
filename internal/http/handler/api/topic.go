package api

import (
	"net/http"
	"time"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/pkg/errors"
)

type Topic struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	Upvotes   int64      `json:"upvotes"`
	Downvotes int64      `json:"downvotes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Comment struct {
	ID        string     `json:"id"`
	TopicID   string     `json:"topicId"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	Upvotes   int64      `json:"upvotes"`
	Downvotes int64      `json:"downvotes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ListTopicsResponse struct {
	Topics []Topic `json:"topics"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

type GetTopicResponse struct {
	Topic Topic `json:"topic"`
}

type ListCommentsResponse struct {
	Comments []Comment `json:"comments"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

func (h *Handler) handleListTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.forum.ListTopics(ctx, getListOptions(r.URL.Query()))
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	res := ListTopicsResponse{
		Topics: make([]Topic, 0, len(page.Items)),
		Total:  page.TotalCount,
		Page:   page.PageNumber,
		Limit:  page.PageSize,
	}

	for _, t := range page.Items {
		res.Topics = append(res.Topics, toTopic(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleGetTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topicID := model.TopicID(r.PathValue("topicID"))

	topic, err := h.forum.GetTopic(ctx, topicID)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, GetTopicResponse{Topic: toTopic(topic)})
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topicID := model.TopicID(r.PathValue("topicID"))

	if _, err := h.forum.GetTopic(ctx, topicID); err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	query := r.URL.Query()

	opts := model.ListOptions{
		PageNumber: getQueryPage(query, 1),
		PageSize:   getQueryLimit(query, model.DefaultPageSize),
		OrderBy:    "creation_time",
		Ordering:   model.OrderingAscending,
	}

	page, err := h.forum.ListComments(ctx, topicID, opts)
	if err != nil {
		writeError(w, r, errors.WithStack(err))
		return
	}

	res := ListCommentsResponse{
		Comments: make([]Comment, 0, len(page.Items)),
		Total:    page.TotalCount,
		Page:     page.PageNumber,
		Limit:    page.PageSize,
	}

	for _, c := range page.Items {
		res.Comments = append(res.Comments, toComment(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toTopic(t model.Topic) Topic {
	return Topic{
		ID:        string(t.ID()),
		Title:     t.Title(),
		Content:   t.Content(),
		Author:    t.Author(),
		Upvotes:   t.Upvotes(),
		Downvotes: t.Downvotes(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: optionalTime(t.UpdatedAt()),
	}
}

func toComment(c model.Comment) Comment {
	return Comment{
		ID:        string(c.ID()),
		TopicID:   string(c.TopicID()),
		Content:   c.Content(),
		Author:    c.Author(),
		Upvotes:   c.Upvotes(),
		Downvotes: c.Downvotes(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: optionalTime(c.UpdatedAt()),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
