package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/connectivity"
)

// mockHealthChecker is a mock implementation of HealthChecker for testing.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.err
}

func TestHealthHandler_Healthz(t *testing.T) {
	h := NewHealthHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got %s", response.Status)
	}
}

func TestHealthHandler_Readyz_AllHealthy(t *testing.T) {
	store := &mockHealthChecker{}
	erp := &mockHealthChecker{}
	h := NewHealthHandler(store, erp)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	h.Readyz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got %s", response.Status)
	}

	if response.Checks["token_store"] != "ok" {
		t.Errorf("expected token_store check 'ok', got %s", response.Checks["token_store"])
	}

	if response.Checks["erp"] != "ok" {
		t.Errorf("expected erp check 'ok', got %s", response.Checks["erp"])
	}
}

func TestHealthHandler_Readyz_TokenStoreUnhealthy(t *testing.T) {
	store := &mockHealthChecker{err: errors.New("connection refused")}
	erp := &mockHealthChecker{}
	h := NewHealthHandler(store, erp)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	h.Readyz(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "unhealthy" {
		t.Errorf("expected status 'unhealthy', got %s", response.Status)
	}

	if response.Checks["token_store"] != "error: connection refused" {
		t.Errorf("unexpected token_store check: %s", response.Checks["token_store"])
	}
}

func TestHealthHandler_Readyz_NoDependencies(t *testing.T) {
	h := NewHealthHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	h.Readyz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Checks["erp"] != "not configured" {
		t.Errorf("expected 'not configured', got %s", response.Checks["erp"])
	}
}

type fakeConn struct {
	state     connectivity.State
	connected bool
}

func (c *fakeConn) GetState() connectivity.State { return c.state }
func (c *fakeConn) Connect()                     { c.connected = true }

func TestConnChecker(t *testing.T) {
	tests := []struct {
		state       connectivity.State
		wantErr     bool
		wantConnect bool
	}{
		{connectivity.Idle, false, true},
		{connectivity.Connecting, false, false},
		{connectivity.Ready, false, false},
		{connectivity.TransientFailure, true, false},
		{connectivity.Shutdown, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			conn := &fakeConn{state: tt.state}
			err := ConnChecker{Conn: conn}.Ping(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Ping() error = %v, wantErr %v", err, tt.wantErr)
			}
			if conn.connected != tt.wantConnect {
				t.Errorf("Connect called = %v, want %v", conn.connected, tt.wantConnect)
			}
		})
	}
}
