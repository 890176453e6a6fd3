package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/core/port"
	"github.com/pkg/errors"
)

func getQueryPage(query url.Values, defaultValue int) int {
	return getQueryInt(query, "page", defaultValue)
}

func getQueryLimit(query url.Values, defaultValue int) int {
	return getQueryInt(query, "limit", defaultValue)
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultValue
	}

	return int(value)
}

func getListOptions(query url.Values) model.ListOptions {
	opts := model.ListOptions{
		PageNumber: getQueryPage(query, 1),
		PageSize:   getQueryLimit(query, model.DefaultPageSize),
		OrderBy:    query.Get("orderBy"),
		Ordering:   model.Ordering(query.Get("ordering")),
		Filters:    map[string]string{},
	}

	if opts.OrderBy == "" {
		opts.Ordering = model.OrderingDescending
	}

	if author := query.Get("author"); author != "" {
		opts.Filters[port.TopicFilterCreatedBy] = author
	}

	return opts
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
	case errors.Is(err, port.ErrInvalidInput):
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: http.StatusText(http.StatusBadRequest)})
	default:
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
		writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}
