package topic

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/core/port"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/topic/component"
	"github.com/pkg/errors"
)

func (h *Handler) getCreatePage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillCreatePageVModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	createPage := component.CreatePage(*vmodel)

	templ.Handler(createPage).ServeHTTP(w, r)
}

func (h *Handler) fillCreatePageVModel(r *http.Request) (*component.CreatePageVModel, error) {
	vmodel := &component.CreatePageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx, vmodel, r,
		h.fillCreatePageForm,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillCreatePageForm(ctx context.Context, vmodel *component.CreatePageVModel, r *http.Request) error {
	vmodel.Action = commonComp.BaseURL(ctx, commonComp.WithPath("topics/new"))
	vmodel.Cancel = commonComp.BaseURL(ctx, commonComp.WithPath("topics/"))
	return nil
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	topic, err := h.forum.CreateTopic(ctx, title, content, httpCtx.User(ctx))
	if err != nil {
		if !errors.Is(err, port.ErrInvalidInput) {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		vmodel, fillErr := h.fillCreatePageVModel(r)
		if fillErr != nil {
			common.HandleError(w, r, errors.WithStack(fillErr))
			return
		}

		vmodel.Title = title
		vmodel.Content = content
		vmodel.Error = "A topic needs a title and a message, both within the length limits."

		createPage := component.CreatePage(*vmodel)

		templ.Handler(createPage, templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
		return
	}

	slog.InfoContext(ctx, "topic submitted", slog.String("topicID", string(topic.ID())))

	// Writes are applied asynchronously, the topic may not be readable yet
	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("topics/"))

	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}
