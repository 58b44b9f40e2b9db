// Package grpcclient is the typed RPC client layer of the ERP front end.
//
// Each resource (invoice, customer, product) gets a facade that turns plain
// Go inputs into erpv1 request messages, attaches the caller's bearer token,
// invokes the generated stub and hands back plain model values. Every
// transport failure is converted by one shared Normalizer, so all facades
// report errors, and expire sessions, the same way.
package grpcclient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/metrics"
)

const (
	// DefaultEndpoint is the ERP gRPC endpoint used when none is configured.
	DefaultEndpoint = "localhost:8080"
	// DefaultTimeout bounds calls whose context has no deadline.
	DefaultTimeout = 30 * time.Second
)

// TokenSource yields the bearer token for the next call. An empty token is
// sent as is.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SessionHandler tears the session down when the backend rejects the
// credentials.
type SessionHandler interface {
	ClearSession(ctx context.Context) error
	RedirectToLogin(ctx context.Context)
}

// Options configures a Client.
type Options struct {
	Tokens  TokenSource
	Session SessionHandler
	Logger  *slog.Logger
	Metrics metrics.Recorder

	// Timeout applies to calls whose context carries no deadline.
	// Zero selects DefaultTimeout; a negative value disables it.
	Timeout time.Duration

	// RequestID extracts a correlation ID from the caller's context. When it
	// returns a non-empty value the ID travels as x-request-id metadata.
	RequestID func(ctx context.Context) string
}

// Client holds what all facades share: the token source, the error
// normalizer, logging and metrics. It is safe for concurrent use.
type Client struct {
	tokens     TokenSource
	normalizer *Normalizer
	logger     *slog.Logger
	metrics    metrics.Recorder
	timeout    time.Duration
	requestID  func(ctx context.Context) string
}

// New creates a Client. Tokens and Session are required.
func New(opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewNoop()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		tokens:     opts.Tokens,
		normalizer: NewNormalizer(opts.Session, opts.Logger, opts.Metrics),
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		timeout:    opts.Timeout,
		requestID:  opts.RequestID,
	}
}

// Facades bundles the resource facades bound to one connection.
type Facades struct {
	Invoices  *InvoiceClient
	Customers *CustomerClient
	Products  *ProductClient
}

// Facades binds all resource facades to cc.
func (c *Client) Facades(cc grpc.ClientConnInterface) *Facades {
	return &Facades{
		Invoices:  NewInvoiceClient(c, erpv1.NewInvoiceServiceClient(cc)),
		Customers: NewCustomerClient(c, erpv1.NewCustomerServiceClient(cc)),
		Products:  NewProductClient(c, erpv1.NewProductServiceClient(cc)),
	}
}

// Dial creates a plaintext connection to endpoint. The connection is lazy;
// no I/O happens until the first call.
func Dial(endpoint string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	dialOpts := make([]grpc.DialOption, 0, len(opts)+1)
	dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(endpoint, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return conn, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || c.timeout < 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
