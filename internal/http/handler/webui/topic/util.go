package topic

import (
	"net/http"
	"strconv"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/topic/component"
	"github.com/bornholm/pettymatters/internal/markdown"
	"github.com/pkg/errors"
)

func getPageNumber(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, common.NewError(
			"invalid page parameter",
			"The requested page does not exist.",
			http.StatusBadRequest,
		)
	}

	return page, nil
}

func toTopicItem(topic model.Topic) component.TopicItem {
	return component.TopicItem{
		ID:        string(topic.ID()),
		Title:     topic.Title(),
		Author:    topic.Author(),
		CreatedAt: topic.CreatedAt(),
		UpdatedAt: topic.UpdatedAt(),
		Upvotes:   topic.Upvotes(),
		Downvotes: topic.Downvotes(),
	}
}

func toCommentItem(comment model.Comment) (component.CommentItem, error) {
	content, err := markdown.Render(comment.Content())
	if err != nil {
		return component.CommentItem{}, errors.Wrapf(err, "could not render comment '%s'", comment.ID())
	}

	return component.CommentItem{
		ID:        string(comment.ID()),
		Author:    comment.Author(),
		CreatedAt: comment.CreatedAt(),
		UpdatedAt: comment.UpdatedAt(),
		Upvotes:   comment.Upvotes(),
		Downvotes: comment.Downvotes(),
		Content:   content,
	}, nil
}
