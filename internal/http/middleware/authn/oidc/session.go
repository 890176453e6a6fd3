package oidc

import (
	"net/http"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/pkg/errors"
)

var errSessionNotFound = errors.New("session not found")

const (
	sessionKeyProvider    = "provider"
	sessionKeySubject     = "subject"
	sessionKeyEmail       = "email"
	sessionKeyDisplayName = "display_name"
	sessionKeyReturnTo    = "return_to"
)

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user model.User) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyProvider] = user.Provider()
	sess.Values[sessionKeySubject] = user.Subject()
	sess.Values[sessionKeyEmail] = user.Email()
	sess.Values[sessionKeyDisplayName] = user.DisplayName()
	delete(sess.Values, sessionKeyReturnTo)

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) storeReturnPath(w http.ResponseWriter, r *http.Request, path string) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyReturnTo] = path

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveReturnPath(r *http.Request) string {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return ""
	}

	path, _ := sess.Values[sessionKeyReturnTo].(string)
	if !isReturnPath(path) {
		return ""
	}

	return path
}

func (h *Handler) retrieveSessionUser(r *http.Request) (model.User, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	provider, _ := sess.Values[sessionKeyProvider].(string)
	subject, _ := sess.Values[sessionKeySubject].(string)

	if provider == "" || subject == "" {
		return nil, errors.WithStack(errSessionNotFound)
	}

	email, _ := sess.Values[sessionKeyEmail].(string)
	displayName, _ := sess.Values[sessionKeyDisplayName].(string)

	return model.NewUser(provider, subject, email, displayName), nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
