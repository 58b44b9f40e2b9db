package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/steelerp/erpclient/internal/session"
)

func TestCredentials(t *testing.T) {
	t.Parallel()

	const sid = "0b5e7b8e-3f3c-4f0e-9c55-2f5d3c1a9e10"
	sessions := session.NewMemoryProvider()
	if err := sessions.For(sid).SetToken(context.Background(), "cookie-token"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		header    string
		cookie    string
		wantToken string
	}{
		{"bearer header", "Bearer hdr-token", "", "hdr-token"},
		{"lowercase scheme", "bearer hdr-token", "", "hdr-token"},
		{"header beats cookie", "Bearer hdr-token", sid, "hdr-token"},
		{"session cookie", "", sid, "cookie-token"},
		{"unknown session", "", "6f1d2c55-1c1a-4d8e-8d55-0c3e2b1f7a01", ""},
		{"malformed cookie", "", "../token", ""},
		{"anonymous", "", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			var bound bool
			handler := Credentials(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var store session.Store
				store, bound = session.StoreFrom(r.Context())
				if bound {
					seen, _ = store.Token(r.Context())
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if !bound {
				t.Fatal("no store bound to the request")
			}
			if seen != tt.wantToken {
				t.Errorf("token = %q, want %q", seen, tt.wantToken)
			}
		})
	}
}

func TestCredentials_RejectsMalformedHeader(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"Basic dXNlcjpwdw==", "Bearer", "Bearer   ", "Bearer a b\x01", "Bearer " + strings.Repeat("t", maxBearerLength+1)} {
		called := false
		handler := Credentials(session.NewMemoryProvider())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if called {
			t.Errorf("%q reached the handler", header)
		}
		if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "INVALID_AUTHORIZATION") {
			t.Errorf("%q: status = %d body = %s", header, rec.Code, rec.Body.String())
		}
	}
}

func TestSessionID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := SessionID(req); ok {
		t.Error("SessionID without cookie should fail")
	}

	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "0B5E7B8E-3F3C-4F0E-9C55-2F5D3C1A9E10"})
	id, ok := SessionID(req)
	if !ok || id != "0b5e7b8e-3f3c-4f0e-9c55-2f5d3c1a9e10" {
		t.Errorf("SessionID() = %q, %v", id, ok)
	}
}
