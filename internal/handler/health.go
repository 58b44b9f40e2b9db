package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/grpc/connectivity"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ConnState is the part of *grpc.ClientConn readiness needs.
type ConnState interface {
	GetState() connectivity.State
	Connect()
}

// ConnChecker reports a gRPC connection as unhealthy while it is failing or
// closed. An idle connection is kicked to connect and counts as healthy.
type ConnChecker struct {
	Conn ConnState
}

// Ping implements HealthChecker.
func (c ConnChecker) Ping(ctx context.Context) error {
	switch state := c.Conn.GetState(); state {
	case connectivity.Idle:
		c.Conn.Connect()
		return nil
	case connectivity.TransientFailure, connectivity.Shutdown:
		return fmt.Errorf("erp connection %s", state)
	default:
		return nil
	}
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	tokenStore HealthChecker
	erp        HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for a checker that does not apply.
func NewHealthHandler(tokenStore, erp HealthChecker) *HealthHandler {
	return &HealthHandler{
		tokenStore: tokenStore,
		erp:        erp,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz reports liveness.
// It returns 200 if the server is running.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz reports readiness of the token store and the ERP connection.
// It returns 200 only if the token store answers and the ERP connection is
// not failing.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	for name, checker := range map[string]HealthChecker{
		"token_store": h.tokenStore,
		"erp":         h.erp,
	} {
		if checker == nil {
			checks[name] = "not configured"
			continue
		}
		if err := checker.Ping(ctx); err != nil {
			checks[name] = "error: " + err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{
		Status: status,
		Checks: checks,
	})
}
