package oidc

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/bornholm/pettymatters/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Authenticate implements [authn.Authenticator].
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (model.User, error) {
	user, err := h.retrieveSessionUser(r)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, nil
		}

		// Cookies signed with rotated keys cannot be decoded, the visitor
		// continues anonymously.
		slog.WarnContext(r.Context(), "could not retrieve session user", slogx.Error(err))

		return nil, nil
	}

	return user, nil
}

var _ authn.Authenticator = &Handler{}
