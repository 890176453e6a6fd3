package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/bornholm/pettymatters/internal/metrics"
)

const maxLocalizeElements = 1000

type TimestampElement struct {
	ID           string `json:"id"`
	RawTimestamp string `json:"rawTimestamp"`
}

type LocalizedTimestamp struct {
	ID           string `json:"id"`
	RawTimestamp string `json:"rawTimestamp"`
	Text         string `json:"text"`
	Valid        bool   `json:"valid"`
}

type LocalizeResponse struct {
	Locale     string               `json:"locale"`
	Timezone   string               `json:"timezone"`
	Renderings []LocalizedTimestamp `json:"renderings"`
}

// handleLocalize renders the posted timestamp elements, in order, with the
// locale and timezone of the requesting viewer.
func (h *Handler) handleLocalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var elements []TimestampElement

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := decoder.Decode(&elements); err != nil {
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if len(elements) > maxLocalizeElements {
		writeJSON(w, r, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("at most %d elements can be localized at once", maxLocalizeElements),
		})
		return
	}

	formatter := httpCtx.Formatter(ctx)

	input := make([]localtime.Element, len(elements))
	for i, e := range elements {
		input[i] = localtime.Element{ID: e.ID, RawTimestamp: e.RawTimestamp}
	}

	renderings := localtime.RenderAll(formatter, input)

	res := LocalizeResponse{
		Locale:     formatter.Locale().String(),
		Timezone:   formatter.Location().String(),
		Renderings: make([]LocalizedTimestamp, 0, len(renderings)),
	}

	for _, rendering := range renderings {
		if rendering.Valid {
			metrics.LocalizedTimestamps.Inc()
		} else {
			metrics.InvalidTimestamps.Inc()
		}

		res.Renderings = append(res.Renderings, LocalizedTimestamp{
			ID:           rendering.ID,
			RawTimestamp: rendering.RawTimestamp,
			Text:         rendering.Text,
			Valid:        rendering.Valid,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
