package testutil

import (
	"context"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/steelerp/erpclient/internal/erpv1"
)

const bufSize = 1 << 20

// Call is one request received by a Backend. Body holds the request in
// protobuf wire form.
type Call struct {
	Method  string
	MD      metadata.MD
	Request proto.Message
	Body    []byte
}

// Decode unmarshals the request body into v.
func (c Call) Decode(t testing.TB, v proto.Message) {
	t.Helper()
	if err := proto.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("decode %s body: %v", c.Method, err)
	}
}

// Handler answers one call. A non-nil error should come from status.Error.
type Handler func(ctx context.Context, call Call) (proto.Message, error)

// Backend is an in-process ERP gRPC server on a bufconn listener serving the
// generated erpv1 services. Methods without a handler answer Unimplemented.
type Backend struct {
	lis *bufconn.Listener
	srv *grpc.Server

	mu       sync.Mutex
	handlers map[string]Handler
	calls    []Call
}

// NewBackend starts a Backend and stops it when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		lis:      bufconn.Listen(bufSize),
		handlers: make(map[string]Handler),
	}
	b.srv = grpc.NewServer(grpc.UnaryInterceptor(b.intercept))
	erpv1.RegisterInvoiceServiceServer(b.srv, erpv1.UnimplementedInvoiceServiceServer{})
	erpv1.RegisterCustomerServiceServer(b.srv, erpv1.UnimplementedCustomerServiceServer{})
	erpv1.RegisterProductServiceServer(b.srv, erpv1.UnimplementedProductServiceServer{})

	go func() {
		_ = b.srv.Serve(b.lis)
	}()
	t.Cleanup(b.Stop)

	return b
}

// Stop shuts the server down. Calls made afterwards fail with Unavailable.
func (b *Backend) Stop() {
	b.srv.Stop()
}

// Handle registers h for the full method name.
func (b *Backend) Handle(method string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method] = h
}

// Reply makes method answer resp.
func (b *Backend) Reply(method string, resp proto.Message) {
	b.Handle(method, func(context.Context, Call) (proto.Message, error) {
		return resp, nil
	})
}

// Fail makes method answer with a status error.
func (b *Backend) Fail(method string, code codes.Code, msg string) {
	b.Handle(method, func(context.Context, Call) (proto.Message, error) {
		return nil, status.Error(code, msg)
	})
}

// Calls returns every call received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// LastCall returns the most recent call of method.
func (b *Backend) LastCall(t testing.TB, method string) Call {
	t.Helper()
	calls := b.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method {
			return calls[i]
		}
	}
	t.Fatalf("no call of %s", method)
	return Call{}
}

// Dial connects to the backend and closes the connection when the test ends.
func (b *Backend) Dial(t testing.TB) *grpc.ClientConn {
	t.Helper()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return b.lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial backend: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// intercept records every unary call and answers it from the registered
// handler, falling through to the Unimplemented server otherwise.
func (b *Backend) intercept(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	msg, ok := req.(proto.Message)
	if !ok {
		return nil, status.Errorf(codes.Internal, "%s: request %T is not a protobuf message", info.FullMethod, req)
	}
	body, err := proto.Marshal(msg)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%s: %v", info.FullMethod, err)
	}

	md, _ := metadata.FromIncomingContext(ctx)
	call := Call{Method: info.FullMethod, MD: md.Copy(), Request: msg, Body: body}

	b.mu.Lock()
	b.calls = append(b.calls, call)
	h := b.handlers[info.FullMethod]
	b.mu.Unlock()

	if h == nil {
		return next(ctx, req)
	}

	resp, err := h(ctx, call)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, status.Errorf(codes.Internal, "%s: handler returned no response", info.FullMethod)
	}
	return resp, nil
}
