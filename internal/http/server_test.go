package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	calls := make([]string, 0)

	tracing := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		baseURL := httpCtx.BaseURL(r.Context())
		fmt.Fprintf(w, "%s %s", r.URL.Path, baseURL.JoinPath("topics/").String())
	})

	server := NewServer(
		WithBaseURL("https://forum.example.org/"),
		WithMount("/api/v1/", api),
		WithMount("/metrics", WithBasicAuth("prometheus", "secret")(api)),
		WithMiddlewares(tracing("outer"), tracing("inner")),
	)

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/topics https://forum.example.org/topics/", res.Body.String(); e != g {
		t.Errorf("res.Body: expected '%v', got '%v'", e, g)
	}

	if e, g := fmt.Sprint([]string{"outer", "inner"}), fmt.Sprint(calls); e != g {
		t.Errorf("calls: expected '%v', got '%v'", e, g)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.SetBasicAuth("prometheus", "secret")

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}
}
