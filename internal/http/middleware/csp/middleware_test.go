package csp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
)

func TestMiddleware(t *testing.T) {
	nonces := make([]string, 0)

	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonces = append(nonces, httpCtx.Nonce(r.Context()))
	}))

	policies := make([]string, 0)

	for range 2 {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))
		policies = append(policies, res.Header().Get("Content-Security-Policy"))
	}

	if nonces[0] == "" || nonces[0] == nonces[1] {
		t.Fatalf("nonces: expected two distinct nonces, got %v", nonces)
	}

	for i, policy := range policies {
		if !strings.Contains(policy, "'nonce-"+nonces[i]+"'") {
			t.Errorf("policy %d: expected nonce '%s' in '%s'", i, nonces[i], policy)
		}

		if !strings.Contains(policy, "style-src 'self';") {
			t.Errorf("policy %d: expected inline styles to be forbidden, got '%s'", i, policy)
		}

		if strings.Contains(policy, "unsafe-inline") {
			t.Errorf("policy %d: unexpected 'unsafe-inline' in '%s'", i, policy)
		}
	}
}
