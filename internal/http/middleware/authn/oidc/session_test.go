package oidc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/pkg/errors"
)

func TestSessionUser(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(store)

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers/github/callback", nil)

	alice := model.NewUser("github", "42", "alice@example.org", "Alice")

	if err := handler.storeSessionUser(res, req, alice); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	user, err := handler.Authenticate(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user == nil {
		t.Fatalf("user: expected a session user, got nil")
	}

	if e, g := alice.Subject(), user.Subject(); e != g {
		t.Errorf("user.Subject(): expected '%v', got '%v'", e, g)
	}

	if e, g := alice.DisplayName(), user.DisplayName(); e != g {
		t.Errorf("user.DisplayName(): expected '%v', got '%v'", e, g)
	}

	user, err = handler.Authenticate(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user != nil {
		t.Errorf("user: expected no user without session cookie, got '%v'", model.Username(user))
	}
}

func TestGetUserDisplayName(t *testing.T) {
	type testCase struct {
		User     goth.User
		Expected string
	}

	testCases := []testCase{
		{User: goth.User{UserID: "1", RawData: map[string]any{"preferred_username": "al"}, NickName: "alice"}, Expected: "al"},
		{User: goth.User{UserID: "1", NickName: "alice", Name: "Alice Liddell"}, Expected: "alice"},
		{User: goth.User{UserID: "1", FirstName: "Alice", LastName: "Liddell"}, Expected: "Alice Liddell"},
		{User: goth.User{UserID: "1"}, Expected: "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.Expected, func(t *testing.T) {
			if e, g := tc.Expected, getUserDisplayName(tc.User); e != g {
				t.Errorf("getUserDisplayName(): expected '%v', got '%v'", e, g)
			}
		})
	}
}
