package grpcclient

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/steelerp/erpclient/internal/metrics"
)

func statusErr(code codes.Code, msg string) error {
	return status.Error(code, msg)
}

type sessionSpy struct {
	mu        sync.Mutex
	clears    int
	redirects int
	clearErr  error
}

func (s *sessionSpy) ClearSession(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	return s.clearErr
}

func (s *sessionSpy) RedirectToLogin(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirects++
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		resource     Resource
		err          error
		wantKind     error
		wantCode     codes.Code
		wantMessage  string
		wantTeardown bool
	}{
		{
			name:         "unauthenticated",
			resource:     ResourceInvoice,
			err:          statusErr(codes.Unauthenticated, "token expired"),
			wantKind:     ErrSessionExpired,
			wantCode:     codes.Unauthenticated,
			wantMessage:  "Session expired. Please login again.",
			wantTeardown: true,
		},
		{
			name:        "permission denied ignores server text",
			resource:    ResourceCustomer,
			err:         statusErr(codes.PermissionDenied, "role viewer lacks customers.write"),
			wantKind:    ErrPermissionDenied,
			wantCode:    codes.PermissionDenied,
			wantMessage: "You don't have permission to perform this action.",
		},
		{
			name:        "not found uses resource",
			resource:    ResourceCustomer,
			err:         statusErr(codes.NotFound, "no row"),
			wantKind:    ErrNotFound,
			wantCode:    codes.NotFound,
			wantMessage: "Customer not found.",
		},
		{
			name:        "not found without resource",
			err:         statusErr(codes.NotFound, ""),
			wantKind:    ErrNotFound,
			wantCode:    codes.NotFound,
			wantMessage: "Resource not found.",
		},
		{
			name:        "failed precondition passes message through",
			resource:    ResourceInvoice,
			err:         statusErr(codes.FailedPrecondition, "Cannot delete a paid invoice"),
			wantKind:    ErrFailedPrecondition,
			wantCode:    codes.FailedPrecondition,
			wantMessage: "Cannot delete a paid invoice",
		},
		{
			name:        "failed precondition without message",
			resource:    ResourceProduct,
			err:         statusErr(codes.FailedPrecondition, ""),
			wantKind:    ErrFailedPrecondition,
			wantCode:    codes.FailedPrecondition,
			wantMessage: "Precondition failed.",
		},
		{
			name:        "other code with message",
			resource:    ResourceProduct,
			err:         statusErr(codes.InvalidArgument, "sku already exists"),
			wantKind:    ErrRemote,
			wantCode:    codes.InvalidArgument,
			wantMessage: "sku already exists",
		},
		{
			name:        "other code without message",
			resource:    ResourceProduct,
			err:         statusErr(codes.Internal, ""),
			wantKind:    ErrRemote,
			wantCode:    codes.Internal,
			wantMessage: "An error occurred.",
		},
		{
			name:        "unavailable is a network failure",
			resource:    ResourceInvoice,
			err:         statusErr(codes.Unavailable, "connection refused"),
			wantKind:    ErrNetwork,
			wantCode:    codes.Unavailable,
			wantMessage: "connection refused",
		},
		{
			name:        "unavailable without message",
			resource:    ResourceInvoice,
			err:         statusErr(codes.Unavailable, ""),
			wantKind:    ErrNetwork,
			wantCode:    codes.Unavailable,
			wantMessage: "Network error. Please try again.",
		},
		{
			name:        "plain error",
			resource:    ResourceInvoice,
			err:         errors.New("dial tcp: i/o timeout"),
			wantKind:    ErrNetwork,
			wantCode:    codes.Unknown,
			wantMessage: "dial tcp: i/o timeout",
		},
		{
			name:        "plain error without text",
			resource:    ResourceInvoice,
			err:         errors.New(""),
			wantKind:    ErrNetwork,
			wantCode:    codes.Unknown,
			wantMessage: "Network error. Please try again.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spy := &sessionSpy{}
			n := NewNormalizer(spy, discardLogger(), nil)

			got := n.Normalize(context.Background(), tt.resource, "/erp.v1.Test/Call", tt.err)
			if !errors.Is(got, tt.wantKind) {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", got.Code, tt.wantCode)
			}
			if got.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMessage)
			}
			if got.Method != "/erp.v1.Test/Call" {
				t.Errorf("Method = %q", got.Method)
			}
			if _, err := ulid.Parse(got.CallID); err != nil {
				t.Errorf("CallID %q is not a ULID: %v", got.CallID, err)
			}
			if !errors.Is(got, tt.err) {
				t.Error("Error should unwrap to the transport error")
			}

			wantCalls := 0
			if tt.wantTeardown {
				wantCalls = 1
			}
			if spy.clears != wantCalls || spy.redirects != wantCalls {
				t.Errorf("clears/redirects = %d/%d, want %d", spy.clears, spy.redirects, wantCalls)
			}
		})
	}
}

func TestNormalize_ClearFailureStillRedirects(t *testing.T) {
	t.Parallel()

	spy := &sessionSpy{clearErr: errors.New("disk full")}
	n := NewNormalizer(spy, discardLogger(), nil)

	got := n.Normalize(context.Background(), ResourceInvoice, "m", statusErr(codes.Unauthenticated, ""))
	if !errors.Is(got, ErrSessionExpired) {
		t.Fatalf("Kind = %v, want ErrSessionExpired", got.Kind)
	}
	if spy.redirects != 1 {
		t.Errorf("redirects = %d, want 1", spy.redirects)
	}
}

func TestNormalize_CanceledContextStillTearsDown(t *testing.T) {
	t.Parallel()

	var seenErr error
	spy := &ctxSession{onClear: func(ctx context.Context) { seenErr = ctx.Err() }}
	n := NewNormalizer(spy, discardLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Normalize(ctx, ResourceInvoice, "m", statusErr(codes.Unauthenticated, ""))

	if seenErr != nil {
		t.Errorf("teardown context error = %v, want nil", seenErr)
	}
}

type ctxSession struct {
	onClear func(ctx context.Context)
}

func (s *ctxSession) ClearSession(ctx context.Context) error {
	s.onClear(ctx)
	return nil
}

func (s *ctxSession) RedirectToLogin(context.Context) {}

func TestNormalize_CountsExpiredSessions(t *testing.T) {
	t.Parallel()

	rec := metrics.NewInMemory()
	n := NewNormalizer(nil, discardLogger(), rec)

	n.Normalize(context.Background(), ResourceInvoice, "m", statusErr(codes.Unauthenticated, ""))
	n.Normalize(context.Background(), ResourceInvoice, "m", statusErr(codes.NotFound, ""))

	if got := rec.Snapshot().SessionsExpired; got != 1 {
		t.Errorf("SessionsExpired = %d, want 1", got)
	}
}

func TestNormalize_UniqueCallIDs(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(nil, discardLogger(), nil)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e := n.Normalize(context.Background(), ResourceProduct, "m", statusErr(codes.Internal, ""))
		if seen[e.CallID] {
			t.Fatalf("duplicate CallID %q", e.CallID)
		}
		seen[e.CallID] = true
	}
}
