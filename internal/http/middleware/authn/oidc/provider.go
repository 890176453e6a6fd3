package oidc

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/core/model"
	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, logoutURL(ctx), http.StatusTemporaryRedirect)
		return
	}

	if from := r.URL.Query().Get(returnToParam); isReturnPath(from) {
		if err := h.storeReturnPath(w, r, from); err != nil {
			slog.WarnContext(ctx, "could not store return path", slogx.Error(errors.WithStack(err)))
		}
	}

	gothic.BeginAuthHandler(w, r)
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, logoutURL(ctx), http.StatusTemporaryRedirect)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.Any("user", gothUser))

	user := model.NewUser(gothUser.Provider, gothUser.UserID, gothUser.Email, getUserDisplayName(gothUser))

	if user.Subject() == "" {
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.New("user subject missing")))
		http.Redirect(w, r, logoutURL(ctx), http.StatusTemporaryRedirect)
		return
	}

	if user.Provider() == "" {
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.New("user provider missing")))
		http.Redirect(w, r, logoutURL(ctx), http.StatusTemporaryRedirect)
		return
	}

	returnTo := h.retrieveReturnPath(r)

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(errors.WithStack(err)))
		http.Redirect(w, r, logoutURL(ctx), http.StatusTemporaryRedirect)
		return
	}

	slog.InfoContext(ctx, "user logged in", slog.String("provider", user.Provider()), slog.String("user", model.Username(user)))

	if returnTo == "" {
		returnTo = httpCtx.BaseURL(ctx).JoinPath(h.redirectPath).String()
	}

	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	baseURL := httpCtx.BaseURL(ctx)

	user, err := h.retrieveSessionUser(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		slog.WarnContext(ctx, "could not retrieve user from session", slogx.Error(err))
	}

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not retrieve clear session", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil {
		http.Redirect(w, r, baseURL.String(), http.StatusTemporaryRedirect)
		return
	}

	redirectURL := baseURL.JoinPath("auth/oidc/providers", user.Provider(), "logout")

	http.Redirect(w, r, redirectURL.String(), http.StatusTemporaryRedirect)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := gothic.Logout(w, r); err != nil {
		slog.WarnContext(ctx, "could not logout user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, baseURL.String(), http.StatusTemporaryRedirect)
}

const returnToParam = "from"

// isReturnPath reports whether path can be used to send a freshly logged in
// user back to the forum page they came from. Only local paths outside of
// the authentication routes qualify.
func isReturnPath(path string) bool {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		return false
	}

	u, err := url.Parse(path)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return false
	}

	return !strings.Contains(u.Path, "/auth/")
}

func logoutURL(ctx context.Context) string {
	return httpCtx.BaseURL(ctx).JoinPath("auth/oidc/logout").String()
}

func getUserDisplayName(user goth.User) string {
	var displayName string

	rawPreferredUsername, exists := user.RawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			displayName = preferredUsername
		}
	}

	if displayName == "" {
		displayName = user.NickName
	}

	if displayName == "" {
		displayName = user.Name
	}

	if displayName == "" {
		displayName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	if displayName == "" {
		displayName = user.UserID
	}

	return displayName
}
