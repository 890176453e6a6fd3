package oidc

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/pettymatters/internal/core/model"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

func TestIsReturnPath(t *testing.T) {
	testCases := map[string]bool{
		"/topics/":                    true,
		"/topics/ct9k2?page=2":        true,
		"":                            false,
		"topics/":                     false,
		"//evil.example.org/topics/":  false,
		"/\\evil.example.org":         false,
		"https://evil.example.org/":   false,
		"/auth/oidc/login?from=%2F":   false,
		"/forum/auth/oidc/providers/": false,
	}

	for path, expected := range testCases {
		t.Run(path, func(t *testing.T) {
			if e, g := expected, isReturnPath(path); e != g {
				t.Errorf("isReturnPath(%q): expected '%v', got '%v'", path, e, g)
			}
		})
	}
}

func TestReturnPath(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(store)

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers/github?from=%2Ftopics%2Fct9k2", nil)

	if err := handler.storeReturnPath(res, req, "/topics/ct9k2"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req = httptest.NewRequest(http.MethodGet, "/providers/github/callback", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	if e, g := "/topics/ct9k2", handler.retrieveReturnPath(req); e != g {
		t.Fatalf("retrieveReturnPath(): expected '%v', got '%v'", e, g)
	}

	res = httptest.NewRecorder()

	if err := handler.storeSessionUser(res, req, model.NewUser("github", "42", "alice@example.org", "Alice")); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	if e, g := "", handler.retrieveReturnPath(req); e != g {
		t.Errorf("retrieveReturnPath(): expected return path to be consumed, got '%v'", g)
	}
}

func TestLoginPageReturnPath(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(store, WithProviders(Provider{ID: "github", Label: "GitHub", Class: "provider-github"}))

	type testCase struct {
		Name        string
		From        string
		Expected    string
		NotExpected string
	}

	testCases := []testCase{
		{
			Name:     "forum page",
			From:     "%2Ftopics%2Fct9k2",
			Expected: `/auth/oidc/providers/github?from=%2Ftopics%2Fct9k2"`,
		},
		{
			Name:        "external page",
			From:        "https%3A%2F%2Fevil.example.org%2F",
			Expected:    `/auth/oidc/providers/github"`,
			NotExpected: "evil.example.org",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/login?from="+tc.From, nil)

			handler.ServeHTTP(res, req)

			if e, g := http.StatusOK, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			body := res.Body.String()

			if !strings.Contains(body, tc.Expected) {
				t.Errorf("body: expected to contain '%s', got '%s'", tc.Expected, body)
			}

			if !strings.Contains(body, `class="provider provider-github"`) {
				t.Errorf("body: expected provider class, got '%s'", body)
			}

			if tc.NotExpected != "" && strings.Contains(body, tc.NotExpected) {
				t.Errorf("body: expected not to contain '%s'", tc.NotExpected)
			}
		})
	}
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions()

	if e, g := "pettymatters_auth", opts.SessionName; e != g {
		t.Errorf("opts.SessionName: expected '%v', got '%v'", e, g)
	}

	if e, g := "topics/", opts.RedirectPath; e != g {
		t.Errorf("opts.RedirectPath: expected '%v', got '%v'", e, g)
	}

	opts = NewOptions(WithRedirectPath("topics/new"))

	if e, g := "topics/new", opts.RedirectPath; e != g {
		t.Errorf("opts.RedirectPath: expected '%v', got '%v'", e, g)
	}
}
