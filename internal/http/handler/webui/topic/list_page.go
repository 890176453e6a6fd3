package topic

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/topic/component"
	"github.com/pkg/errors"
)

func (h *Handler) getListPage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillListPageVModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	listPage := component.ListPage(*vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}

func (h *Handler) fillListPageVModel(r *http.Request) (*component.ListPageVModel, error) {
	vmodel := &component.ListPageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx, vmodel, r,
		h.fillListPageTopics,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillListPageTopics(ctx context.Context, vmodel *component.ListPageVModel, r *http.Request) error {
	pageNumber, err := getPageNumber(r)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.forum.ListTopics(ctx, model.ListOptions{
		PageNumber: pageNumber,
		Ordering:   model.OrderingDescending,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Topics = make([]component.TopicItem, 0, len(page.Items))
	for _, t := range page.Items {
		item := toTopicItem(t)
		item.URL = commonComp.BaseURL(ctx, commonComp.WithPath("topics", item.ID))
		vmodel.Topics = append(vmodel.Topics, item)
	}

	vmodel.TotalCount = page.TotalCount
	vmodel.NewTopicURL = commonComp.BaseURL(ctx, commonComp.WithPath("topics/new"))
	vmodel.Pagination = commonComp.NewPagination(ctx, page.PageNumber, page.TotalPages(), page.HasPrevious(), page.HasNext())

	return nil
}
