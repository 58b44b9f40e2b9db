package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"

	"github.com/steelerp/erpclient/internal/grpcclient"
	"github.com/steelerp/erpclient/internal/handler/dto"
	"github.com/steelerp/erpclient/internal/metrics"
	"github.com/steelerp/erpclient/internal/middleware"
	"github.com/steelerp/erpclient/internal/session"
	"github.com/steelerp/erpclient/internal/testutil"
)

// gateway is a router wired to real facades over an in-process backend. do
// sends the session cookie sid when it is set.
type gateway struct {
	router   http.Handler
	backend  *testutil.Backend
	sessions *session.MemoryProvider
	sid      string
	metrics  *metrics.InMemoryRecorder
}

// newGateway starts a gateway. A non-empty token logs one browser in and
// makes it the default caller of do.
func newGateway(t *testing.T, token string) *gateway {
	t.Helper()

	logger := testutil.DiscardLogger()
	provider := session.NewMemoryProvider()
	sessions := session.NewManager(nil, nil, "/login", logger)
	recorder := metrics.NewInMemory()

	client := grpcclient.New(grpcclient.Options{
		Tokens:    sessions,
		Session:   sessions,
		Logger:    logger,
		Metrics:   recorder,
		RequestID: middleware.GetRequestID,
	})
	backend := testutil.NewBackend(t)
	f := client.Facades(backend.Dial(t))

	h := New()
	sessionHandler := NewSessionHandler(sessions, provider, false, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Credentials(provider))
	r.Get("/", h.Index)
	r.Post("/session", sessionHandler.Login)
	r.Delete("/session", sessionHandler.Logout)
	r.Get("/metrics", NewMetricsHandler(recorder).Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/invoices", NewInvoiceHandler(f.Invoices, sessions.LoginPath(), logger).Routes)
		r.Route("/customers", NewCustomerHandler(f.Customers, sessions.LoginPath(), logger).Routes)
		r.Route("/products", NewProductHandler(f.Products, sessions.LoginPath(), logger).Routes)
	})
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	g := &gateway{router: r, backend: backend, sessions: provider, metrics: recorder}
	if token != "" {
		g.sid = g.login(t, "", token)
	}
	return g
}

// login posts token as the browser holding cookie sid ("" for none) and
// returns the issued session ID.
func (g *gateway) login(t *testing.T, sid, token string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"token":"`+token+`"}`))
	req.Header.Set("Content-Type", "application/json")
	withSession(req, sid)
	rec := httptest.NewRecorder()
	g.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login set no session cookie")
	return ""
}

// token returns what the session sid holds, "" when nothing.
func (g *gateway) token(sid string) string {
	tok, _ := g.sessions.For(sid).Token(context.Background())
	return tok
}

func (g *gateway) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return g.doAs(t, g.sid, method, path, body)
}

// doAs sends the request as the browser holding cookie sid ("" for none).
func (g *gateway) doAs(t *testing.T, sid, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	withSession(req, sid)
	rec := httptest.NewRecorder()
	g.router.ServeHTTP(rec, req)
	return rec
}

func withSession(req *http.Request, sid string) {
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sid})
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	decodeBody(t, rec, &resp)
	return resp
}

func TestIndexAndFallbacks(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")

	rec := g.do(t, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"service":"erp-gateway"`) {
		t.Errorf("GET / = %d %s", rec.Code, rec.Body.String())
	}

	rec = g.do(t, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound || decodeError(t, rec).Code != "ROUTE_NOT_FOUND" {
		t.Errorf("GET /nope = %d", rec.Code)
	}

	rec = g.do(t, http.MethodPut, "/api/v1/customers/1", "{}")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT customer = %d, want 405", rec.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fail       func(b *testutil.Backend)
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "permission denied",
			fail:       func(b *testutil.Backend) { b.Fail(getCustomer, codes.PermissionDenied, "role lacks customers.read") },
			wantStatus: http.StatusForbidden,
			wantCode:   "PERMISSION_DENIED",
			wantMsg:    grpcclient.MsgPermissionDenied,
		},
		{
			name:       "not found",
			fail:       func(b *testutil.Backend) { b.Fail(getCustomer, codes.NotFound, "") },
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Customer not found.",
		},
		{
			name:       "failed precondition",
			fail:       func(b *testutil.Backend) { b.Fail(getCustomer, codes.FailedPrecondition, "Customer is archived") },
			wantStatus: http.StatusConflict,
			wantCode:   "FAILED_PRECONDITION",
			wantMsg:    "Customer is archived",
		},
		{
			name:       "other code",
			fail:       func(b *testutil.Backend) { b.Fail(getCustomer, codes.Internal, "db down") },
			wantStatus: http.StatusBadGateway,
			wantCode:   "ERP_ERROR",
			wantMsg:    "db down",
		},
		{
			name:       "unimplemented",
			fail:       func(b *testutil.Backend) {},
			wantStatus: http.StatusBadGateway,
			wantCode:   "ERP_ERROR",
		},
		{
			name:       "backend down",
			fail:       func(b *testutil.Backend) { b.Stop() },
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "ERP_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newGateway(t, "tok")
			tt.fail(g.backend)

			rec := g.do(t, http.MethodGet, "/api/v1/customers/1", "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			resp := decodeError(t, rec)
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if tt.wantMsg != "" && resp.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantMsg)
			}
			if resp.CallID == "" || rec.Header().Get(middleware.CallIDHeader) != resp.CallID {
				t.Errorf("call_id = %q, header = %q", resp.CallID, rec.Header().Get(middleware.CallIDHeader))
			}
			if rec.Header().Get("Location") != "" {
				t.Error("only session expiry redirects")
			}
			if g.token(g.sid) != "tok" {
				t.Error("session must survive non-auth failures")
			}
		})
	}
}

func TestSessionExpiredRedirects(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "stale")
	g.backend.Fail(listProducts, codes.Unauthenticated, "jwt expired")

	rec := g.do(t, http.MethodGet, "/api/v1/products", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/login" {
		t.Errorf("Location = %q, want /login", got)
	}
	resp := decodeError(t, rec)
	if resp.Code != "SESSION_EXPIRED" || resp.Error != grpcclient.MsgSessionExpired {
		t.Errorf("body = %+v", resp)
	}
	if g.token(g.sid) != "" {
		t.Error("expired session was not cleared")
	}
}

func TestRequestIDForwarded(t *testing.T) {
	t.Parallel()

	g := newGateway(t, "tok")
	g.backend.Reply(getProduct, testutil.NewTestProduct(3))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-from-browser")
	withSession(req, g.sid)
	rec := httptest.NewRecorder()
	g.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	md := g.backend.LastCall(t, getProduct).MD
	if got := md.Get(grpcclient.RequestIDKey); len(got) != 1 || got[0] != "req-from-browser" {
		t.Errorf("x-request-id = %v", got)
	}
	if got := md.Get(grpcclient.AuthorizationKey); len(got) != 1 || got[0] != "Bearer tok" {
		t.Errorf("authorization = %v", got)
	}
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
