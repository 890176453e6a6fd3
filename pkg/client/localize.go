package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/bornholm/pettymatters/internal/http/handler/api"
	"github.com/pkg/errors"
)

type TimestampElement = api.TimestampElement

type LocalizeResult = api.LocalizeResponse

// Localize asks the server to render the given timestamps with the client's
// locale and timezone. Renderings come back in the order of the elements.
func (c *Client) Localize(ctx context.Context, elements ...TimestampElement) (*LocalizeResult, error) {
	if elements == nil {
		elements = []TimestampElement{}
	}

	body, err := json.Marshal(elements)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	var res api.LocalizeResponse

	if err := c.jsonRequest(ctx, http.MethodPost, "/localize", header, bytes.NewReader(body), &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}
