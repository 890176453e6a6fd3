package topic

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/topic/component"
	"github.com/bornholm/pettymatters/internal/markdown"
	"github.com/pkg/errors"
)

func (h *Handler) getShowPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillShowPageVModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	showPage := component.ShowPage(*vmodel)

	templ.Handler(showPage).ServeHTTP(w, r)
}

func (h *Handler) fillShowPageVModel(r *http.Request) (*component.ShowPageVModel, error) {
	vmodel := &component.ShowPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx, vmodel, r,
		h.fillShowPageTopic,
		h.fillShowPageComments,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillShowPageTopic(ctx context.Context, vmodel *component.ShowPageVModel, r *http.Request) error {
	topicID := model.TopicID(r.PathValue("topicID"))

	topic, err := h.forum.GetTopic(ctx, topicID)
	if err != nil {
		return errors.WithStack(err)
	}

	content, err := markdown.Render(topic.Content())
	if err != nil {
		return errors.Wrapf(err, "could not render topic '%s'", topicID)
	}

	vmodel.Topic = toTopicItem(topic)
	vmodel.Topic.URL = commonComp.BaseURL(ctx, commonComp.WithPath("topics", string(topicID)))
	vmodel.Content = content
	vmodel.ReplyURL = commonComp.BaseURL(ctx, commonComp.WithPath("topics", string(topicID), "comments"))
	vmodel.BackURL = commonComp.BaseURL(ctx, commonComp.WithPath("topics/"))

	return nil
}

func (h *Handler) fillShowPageComments(ctx context.Context, vmodel *component.ShowPageVModel, r *http.Request) error {
	pageNumber, err := getPageNumber(r)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.forum.ListComments(ctx, model.TopicID(vmodel.Topic.ID), model.ListOptions{
		PageNumber: pageNumber,
		OrderBy:    port.CommentOrderByCreationTime,
		Ordering:   model.OrderingAscending,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Comments = make([]component.CommentItem, 0, len(page.Items))
	for _, c := range page.Items {
		item, err := toCommentItem(c)
		if err != nil {
			return errors.WithStack(err)
		}

		vmodel.Comments = append(vmodel.Comments, item)
	}

	vmodel.TotalComments = page.TotalCount
	vmodel.Pagination = commonComp.NewPagination(ctx, page.PageNumber, page.TotalPages(), page.HasPrevious(), page.HasNext())

	return nil
}

func (h *Handler) handleReply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	topicID := model.TopicID(r.PathValue("topicID"))
	message := r.FormValue("message")

	comment, err := h.forum.ReplyToTopic(ctx, topicID, message, httpCtx.User(ctx))
	if err != nil {
		if !errors.Is(err, port.ErrInvalidInput) {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		vmodel, fillErr := h.fillShowPageVModel(r)
		if fillErr != nil {
			common.HandleError(w, r, errors.WithStack(fillErr))
			return
		}

		vmodel.Message = message
		vmodel.Error = "A reply needs a message within the length limit."

		showPage := component.ShowPage(*vmodel)

		templ.Handler(showPage, templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
		return
	}

	slog.InfoContext(ctx, "comment submitted", slog.String("topicID", string(topicID)), slog.String("commentID", string(comment.ID())))

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("topics", string(topicID)))

	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}
