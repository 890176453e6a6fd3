package common

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type WithErrorLinks interface {
	error
	Links() []component.LinkItem
}

func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	vmodel := component.ErrorPageVModel{}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		statusCode = httpErr.StatusCode()
	case errors.Is(err, port.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, port.ErrInvalidInput):
		statusCode = http.StatusBadRequest
	}

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = UserMessage(statusCode)
	}

	var errLinks WithErrorLinks
	if errors.As(err, &errLinks) {
		vmodel.Links = errLinks.Links()
	}

	if statusCode >= http.StatusInternalServerError && userFacingErr == nil {
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
	}

	// Missing pages may be cached briefly, server errors not at all
	if statusCode == http.StatusNotFound {
		w.Header().Set("Cache-Control", "max-age=60")
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	errorPage := component.ErrorPage(vmodel)

	templ.Handler(errorPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
